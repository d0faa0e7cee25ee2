package model

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the scraper.
type Config struct {
	// BrowserBin is an explicit Chrome/Chromium binary path; empty lets
	// the launcher find or download one.
	BrowserBin string `env:"GAIA_BROWSER_BIN"`
	// Headless controls whether the browser runs without a window.
	Headless bool `env:"GAIA_HEADLESS"`
	// WaitTimeout bounds how long to wait for the game iframe to appear.
	WaitTimeout time.Duration `env:"GAIA_WAIT_TIMEOUT"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless:    true,
		WaitTimeout: 10 * time.Second,
	}
}

// LoadConfig returns the default config with environment overrides applied.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
