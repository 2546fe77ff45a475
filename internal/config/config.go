// Package config loads and validates training-run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	LearningRate float64 `yaml:"learning_rate"`
	Momentum     float64 `yaml:"momentum"`
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	Seed         int64   `yaml:"seed"`
	LayerSizes   []int   `yaml:"layer_sizes"`
	LogEvery     int     `yaml:"log_every"`
	DataPath     string  `yaml:"data_path"`
}

// Default returns a runnable baseline configuration.
func Default() *Config {
	return &Config{
		LearningRate: 0.01,
		Epochs:       10,
		BatchSize:    32,
		Seed:         1,
		LayerSizes:   []int{784, 128, 10},
		LogEvery:     1,
	}
}

// Overrides captures CLI-supplied values; zero values leave the loaded
// configuration untouched.
type Overrides struct {
	LearningRate float64
	Momentum     float64
	Epochs       int
	BatchSize    int
	Seed         int64
	LayerSizes   []int
	DataPath     string
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Momentum > 0 {
		c.Momentum = o.Momentum
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if len(o.LayerSizes) > 0 {
		c.LayerSizes = o.LayerSizes
	}
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.LearningRate <= 0 {
		return fmt.Errorf("config: learning_rate must be > 0, got %g", c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("config: momentum must be in [0, 1), got %g", c.Momentum)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("config: epochs must be > 0, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("config: batch_size must be > 0, got %d", c.BatchSize)
	}
	if len(c.LayerSizes) < 2 {
		return fmt.Errorf("config: layer_sizes needs at least input and output sizes, got %v", c.LayerSizes)
	}
	for i, s := range c.LayerSizes {
		if s <= 0 {
			return fmt.Errorf("config: layer_sizes[%d] must be > 0, got %d", i, s)
		}
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1
	}
	return nil
}
