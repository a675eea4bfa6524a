// Package config loads htmlcsv settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "HTMLCSV"

// Config holds all command configuration.
type Config struct {
	Dir      string    `envconfig:"DIR" default:"."`
	Pattern  string    `envconfig:"PATTERN" default:"*.txt"`
	Unescape bool      `envconfig:"UNESCAPE" default:"false"`
	Logging  LogConfig `envconfig:"LOG"`
}

// LogConfig holds logging configuration, read from HTMLCSV_LOG_*.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"warn"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load loads configuration from HTMLCSV_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Dir:     ".",
		Pattern: "*.txt",
		Logging: LogConfig{
			Level: "warn",
		},
	}
}
