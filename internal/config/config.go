// Package config loads sprout settings from environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"sprout/internal/storage"
)

type Config struct {
	// DataDir holds the snapshot file and the journal database.
	// Defaults to ~/.sprout.
	DataDir string `env:"SPROUT_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SPROUT_LOG_LEVEL" envDefault:"info"`

	// TickInterval is the pet motion tick period.
	TickInterval time.Duration `env:"SPROUT_TICK_INTERVAL" envDefault:"150ms"`
}

// Load parses configuration from the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := storage.DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	if cfg.TickInterval < 50*time.Millisecond || cfg.TickInterval > time.Second {
		cfg.TickInterval = 150 * time.Millisecond
	}
	return cfg, nil
}

// SnapshotPath is the JSON snapshot location inside the data dir.
func (c Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, "sprout.json")
}

// JournalPath is the SQLite journal location inside the data dir.
func (c Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}
