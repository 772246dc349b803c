// Package config loads the environment-driven configuration shared by
// cmd/klattplay and cmd/klattd.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds settings common to both binaries. Individual commands add
// their own flags on top of this for per-invocation overrides (output path,
// voice script, etc).
type Config struct {
	SampleRate int `envconfig:"SAMPLE_RATE" default:"48000"`

	Port         string `envconfig:"PORT" default:"8088"`
	MetricsPort  string `envconfig:"METRICS_PORT" default:"9088"`
	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"true"`
}

// Load reads configuration from a .env file (if present) and the
// environment, in that order.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("MANATU", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
