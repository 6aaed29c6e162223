// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the knobs the game reads at startup. Everything has a
// sensible default; nothing is required.
type Config struct {
	// SaveDir overrides where the save slot lives. Empty means the
	// default under the user's config directory.
	SaveDir string `env:"TAMA_SAVE_DIR"`

	// TickRate is the simulation tick period.
	TickRate time.Duration `env:"TAMA_TICK_RATE" envDefault:"300ms"`

	// LogFile receives log output while the TUI owns the terminal.
	// Empty discards logs.
	LogFile string `env:"TAMA_LOG_FILE"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickRate <= 0 {
		return Config{}, fmt.Errorf("tick rate must be positive, got %s", cfg.TickRate)
	}
	return cfg, nil
}
