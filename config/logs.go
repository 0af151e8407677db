package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

type LogsCfg struct {
	// Level is a zerolog level name: trace, debug, info, warn, error. Defaults to info.
	Level string `yaml:"level"`

	// Console switches from JSON lines to human-readable output.
	Console bool `yaml:"console"`
}

func (cfg *LogsCfg) adjust() {
	if cfg.Level == "" {
		cfg.Level = zerolog.InfoLevel.String()
	}
}

func (cfg *LogsCfg) validate() error {
	if _, err := zerolog.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("%w: logs level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ZerologLevel returns the parsed level, falling back to info.
func (cfg *LogsCfg) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
