// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/riordanpawley/taskdeck/internal/services/csvfile"
)

// FileName is the per-directory configuration file.
const FileName = ".taskdeck.toml"

// Default values.
const (
	DefaultPolicy     = csvfile.PolicyFixed
	DefaultFile       = "tasks.csv"
	DefaultArchiveDir = "CSV"
	DefaultLogLevel   = "info"
)

// Config holds the full configuration for taskdeck.
type Config struct {
	Persistence PersistenceConfig `toml:"persistence"`
	UI          UIConfig          `toml:"ui"`
	Log         LogConfig         `toml:"log"`
}

// PersistenceConfig selects and parameterizes the CSV gateway.
type PersistenceConfig struct {
	// Policy is "fixed" (one tasks.csv overwritten in place) or
	// "archive" (timestamped files under ArchiveDir, newest loaded).
	Policy     string `toml:"policy"`
	File       string `toml:"file"`
	ArchiveDir string `toml:"archive_dir"`
}

// UIConfig holds presentation defaults.
type UIConfig struct {
	HideCompleted bool `toml:"hide_completed"`
}

// LogConfig controls the slog output. The TUI owns the terminal, so
// logs go to a file; an empty File discards them.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Persistence: PersistenceConfig{
			Policy:     DefaultPolicy,
			File:       DefaultFile,
			ArchiveDir: DefaultArchiveDir,
		},
		UI: UIConfig{
			HideCompleted: false,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads .taskdeck.toml from dir, filling missing values with
// defaults. A missing file yields the defaults without error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fileCfg Config
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	mergeWithDefaults(&fileCfg, cfg)

	if err := fileCfg.validate(); err != nil {
		return nil, err
	}
	return &fileCfg, nil
}

// mergeWithDefaults fills in missing values with defaults.
func mergeWithDefaults(cfg, defaults *Config) {
	if cfg.Persistence.Policy == "" {
		cfg.Persistence.Policy = defaults.Persistence.Policy
	}
	if cfg.Persistence.File == "" {
		cfg.Persistence.File = defaults.Persistence.File
	}
	if cfg.Persistence.ArchiveDir == "" {
		cfg.Persistence.ArchiveDir = defaults.Persistence.ArchiveDir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

func (c *Config) validate() error {
	switch c.Persistence.Policy {
	case csvfile.PolicyFixed, csvfile.PolicyArchive:
	default:
		return fmt.Errorf("persistence.policy must be %q or %q, got %q",
			csvfile.PolicyFixed, csvfile.PolicyArchive, c.Persistence.Policy)
	}
	return nil
}
