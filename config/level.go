package config

import (
	"fmt"
	"strings"
)

// Policy names the eviction policy of a level.
type Policy string

const (
	// PolicyLRU evicts the least recently touched key.
	PolicyLRU Policy = "lru"

	// PolicyLFU evicts the least frequently read key, oldest first on ties.
	PolicyLFU Policy = "lfu"
)

type LevelCfg struct {
	// Policy is "lru" or "lfu" (case-insensitive).
	Policy Policy `yaml:"policy"`

	// Capacity is the maximum number of entries the level holds. Must be positive.
	Capacity int `yaml:"capacity"`
}

func (cfg *LevelCfg) adjust() {
	cfg.Policy = Policy(strings.ToLower(strings.TrimSpace(string(cfg.Policy))))
}

func (cfg *LevelCfg) validate() error {
	switch cfg.Policy {
	case PolicyLRU, PolicyLFU:
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, cfg.Policy)
	}
	if cfg.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
