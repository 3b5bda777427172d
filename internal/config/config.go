// Package config loads runtime settings from ~/.stagehand/config.yaml,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the delivery engine.
type Config struct {
	// DBPath is the SQLite event-store path. Empty means the default under
	// the stagehand directory.
	DBPath string `yaml:"db_path"`

	// CheckTimeoutSecs bounds how long a check cycle waits for rule
	// results before surfacing a timeout.
	CheckTimeoutSecs int `yaml:"check_timeout_secs"`

	// InitTimeoutSecs bounds the wait for all parts of an activity to
	// report ready before a check may run.
	InitTimeoutSecs int `yaml:"init_timeout_secs"`

	// SnapshotKeep is how many environment snapshots per session survive
	// pruning.
	SnapshotKeep int `yaml:"snapshot_keep"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CheckTimeoutSecs: 10,
		InitTimeoutSecs:  10,
		SnapshotKeep:     5,
	}
}

// Dir returns the path to ~/.stagehand.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".stagehand"), nil
}

// Load reads ~/.stagehand/config.yaml over the defaults. A missing file is
// not an error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile reads the given config file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.CheckTimeoutSecs <= 0 || cfg.InitTimeoutSecs <= 0 || cfg.SnapshotKeep <= 0 {
		return nil, fmt.Errorf("config timeouts and snapshot_keep must be positive")
	}
	return cfg, nil
}

// CheckTimeout returns the check timeout as a duration.
func (c *Config) CheckTimeout() time.Duration {
	return time.Duration(c.CheckTimeoutSecs) * time.Second
}

// InitTimeout returns the init-barrier timeout as a duration.
func (c *Config) InitTimeout() time.Duration {
	return time.Duration(c.InitTimeoutSecs) * time.Second
}
