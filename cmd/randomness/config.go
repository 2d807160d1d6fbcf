package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultDatabase = "randomness.db"

// Config is the optional YAML configuration file. Command-line flags take
// precedence over every field.
type Config struct {
	// Database is the bbolt file holding saved schemes. ":memory:" keeps
	// them for the life of the process only.
	Database string `yaml:"database"`

	// Seed makes generation reproducible. Unset means a time-based seed.
	Seed *uint64 `yaml:"seed"`

	Count   int  `yaml:"count"`
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Database: defaultDatabase,
		Count:    10,
	}
}

// LoadConfig reads path over DefaultConfig. A missing file is only an error
// when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values no command can use.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	return nil
}
