// Package config reads the YAML run configuration of the dataloader CLI.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/dataloader/internal/sampler"
)

// Config describes one CLI run.
//
// Example:
//
//	dataset: data/train.bdlr
//	epochs: 3
//	loader:
//	  batch_size: 32
//	  shuffle: true
//	  seed: 7
//	  last_batch: rollover
//	log:
//	  level: debug
type Config struct {
	Dataset string       `yaml:"dataset"`
	Epochs  int          `yaml:"epochs"`
	Loader  LoaderConfig `yaml:"loader"`
	Log     LogConfig    `yaml:"log"`
}

// LoaderConfig mirrors the loader options that can be set from a file.
type LoaderConfig struct {
	BatchSize int               `yaml:"batch_size"`
	Shuffle   bool              `yaml:"shuffle"`
	Seed      int64             `yaml:"seed"`
	LastBatch sampler.LastBatch `yaml:"last_batch"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level slog.Level `yaml:"level"`
}

// Default returns a configuration with one epoch and no dataset.
func Default() Config {
	return Config{
		Epochs: 1,
		Log:    LogConfig{Level: slog.LevelInfo},
	}
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML file.
func Load(path string) (Config, error) {
	//nolint:gosec // G304: path is supplied by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks fields the loader itself does not check.
// Loader option combinations are left to the loader constructor.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if c.Epochs < 1 {
		return fmt.Errorf("epochs must be >= 1, got %d", c.Epochs)
	}
	return nil
}
