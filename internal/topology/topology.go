// Package topology turns a level list from config into a ready multi-level cache.
package topology

import (
	"fmt"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/level"
	"github.com/rs/zerolog"
)

// NewLevel builds one level from its config.
func NewLevel[K comparable, V any](cfg config.LevelCfg) (level.Level[K, V], error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", config.ErrInvalidConfig, cfg.Capacity)
	}
	lvl, ok := level.New[K, V](level.Kind(cfg.Policy), cfg.Capacity)
	if !ok {
		return nil, fmt.Errorf("%w: unknown policy %q", config.ErrInvalidConfig, cfg.Policy)
	}
	return lvl, nil
}

// Build creates a cache with one level per entry of levels, in order.
func Build[K comparable, V any](levels []config.LevelCfg, logger zerolog.Logger) (*cache.MultiLevel[K, V], error) {
	c := cache.New[K, V](cache.WithLogger(logger))
	for i, cfg := range levels {
		lvl, err := NewLevel[K, V](cfg)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		if err = c.AddLevel(lvl, i); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}
	logger.Info().Int("levels", len(levels)).Msg("cache topology is built")
	return c, nil
}

// Default builds the stock LRU(100) over LFU(500) cache.
func Default[K comparable, V any](logger zerolog.Logger) *cache.MultiLevel[K, V] {
	c, err := Build[K, V](config.Default().Levels, logger)
	if err != nil {
		panic(fmt.Sprintf("topology: default config is invalid: %v", err))
	}
	return c
}
