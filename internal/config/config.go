// Package config loads hangman settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Lives is the number of misses allowed per round.
	Lives int `env:"HANGMAN_LIVES" envDefault:"10"`
	// WordFile prefills the filename prompt at the start of each round.
	WordFile string `env:"HANGMAN_WORD_FILE"`

	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `env:"HANGMAN_LOG_LEVEL" envDefault:"info"`
	// File receives the log output; the terminal belongs to the game screen.
	File string `env:"HANGMAN_LOG_FILE" envDefault:"hangman.log"`
}

// TelemetryConfig controls OpenTelemetry export to Honeycomb.
type TelemetryConfig struct {
	Enabled bool   `env:"HANGMAN_TELEMETRY" envDefault:"false"`
	APIKey  string `env:"HONEYCOMB_HANGMAN_API_KEY"`
	Dataset string `env:"HONEYCOMB_HANGMAN_DATASET" envDefault:"hangman"`
}

// Load parses the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Lives < 1 {
		errs = append(errs, fmt.Sprintf("HANGMAN_LIVES must be at least 1, got %d", c.Lives))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Sprintf("HANGMAN_LOG_LEVEL %q is not a known level", c.Logging.Level))
	}
	if c.Logging.File == "" {
		errs = append(errs, "HANGMAN_LOG_FILE must not be empty")
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}
