package config

import "fmt"

type WorkloadCfg struct {
	// Keys is the size of the key space ("key-0".."key-N").
	Keys int `yaml:"keys"`

	// Ops is the total number of operations to issue.
	Ops int `yaml:"ops"`

	// Rate limits operations per second.
	Rate int `yaml:"rate"`

	// WriteRatio is the share of operations that are puts, in [0..1].
	WriteRatio float64 `yaml:"write_ratio"`

	// Skew shapes key popularity: 1 is uniform, higher values concentrate traffic
	// on the low-numbered keys.
	//
	// Example:
	//   Skew: 2 // key index = Keys * u^2, u uniform in [0,1)
	Skew float64 `yaml:"skew"`
}

func (cfg *WorkloadCfg) Enabled() bool {
	return cfg != nil
}

func (cfg *WorkloadCfg) adjust() {
	if cfg.Keys <= 0 {
		cfg.Keys = 1000
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 10_000
	}
	if cfg.Skew < 1 {
		cfg.Skew = 1
	}
}

func (cfg *WorkloadCfg) validate() error {
	if cfg.Ops < 0 {
		return fmt.Errorf("%w: workload ops must not be negative, got %d", ErrInvalidConfig, cfg.Ops)
	}
	if cfg.WriteRatio < 0 || cfg.WriteRatio > 1 {
		return fmt.Errorf("%w: workload write_ratio must be within [0..1], got %v", ErrInvalidConfig, cfg.WriteRatio)
	}
	return nil
}
