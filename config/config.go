package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid cache config")

// Cache groups the topology and the outer-layer settings.
// Optional components are disabled by leaving them nil.
type Cache struct {
	// Levels lists cache tiers in priority order: the first entry becomes level 0.
	Levels []LevelCfg `yaml:"levels"`

	Logs LogsCfg `yaml:"logs"`

	// Telemetry enables periodic status logs. If nil, nothing is logged periodically.
	Telemetry *TelemetryCfg `yaml:"telemetry"`

	// Workload configures the synthetic traffic generator of the CLI.
	// If nil, the CLI only builds the topology and prints its status.
	Workload *WorkloadCfg `yaml:"workload"`
}

// Default is the stock two-tier topology: a small LRU in front of a larger LFU.
func Default() *Cache {
	cfg := &Cache{
		Levels: []LevelCfg{
			{Policy: PolicyLRU, Capacity: 100},
			{Policy: PolicyLFU, Capacity: 500},
		},
	}
	cfg.AdjustConfig()
	return cfg
}

func (cfg *Cache) AdjustConfig() {
	for i := range cfg.Levels {
		cfg.Levels[i].adjust()
	}
	cfg.Logs.adjust()
	if cfg.Telemetry.Enabled() {
		cfg.Telemetry.adjust()
	}
	if cfg.Workload.Enabled() {
		cfg.Workload.adjust()
	}
}

func (cfg *Cache) Validate() error {
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalidConfig)
	}
	for i := range cfg.Levels {
		if err := cfg.Levels[i].validate(); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	if err := cfg.Logs.validate(); err != nil {
		return err
	}
	if cfg.Workload.Enabled() {
		if err := cfg.Workload.validate(); err != nil {
			return err
		}
	}
	return nil
}

func LoadConfig(path string) (*Cache, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Cache
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, path)
	}
	cfg.AdjustConfig()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}
