// Package config loads start-up settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds presentation settings. None of it affects the soul counters.
type Config struct {
	AppID        string `env:"SOULS_APP_ID" envDefault:"io.elvensouls.tracker"`
	Locale       string `env:"SOULS_LOCALE" envDefault:"ru-RU"`
	LogLevel     string `env:"SOULS_LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"SOULS_LOG_FILE"`
	WindowWidth  int    `env:"SOULS_WINDOW_WIDTH" envDefault:"900"`
	WindowHeight int    `env:"SOULS_WINDOW_HEIGHT" envDefault:"760"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	if c.AppID == "" {
		return errors.New("app id is required")
	}
	if c.Locale == "" {
		return errors.New("locale is required")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
