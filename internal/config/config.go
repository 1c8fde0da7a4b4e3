// Package config provides configuration loading for reflectd.
//
// Configuration is read from a YAML file and overridden by environment
// variables. All sections have working defaults so the daemon starts
// with no config file at all.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fyrsmithlabs/reflectd/internal/gct"
)

// Config holds the complete reflectd configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Glass    GlassConfig    `koanf:"glass"`
	Profiles ProfilesConfig `koanf:"profiles"`
	State    StateConfig    `koanf:"state"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `koanf:"http_port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// RateLimit is the per-client request rate in requests per second.
	RateLimit float64 `koanf:"rate_limit"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level            string `koanf:"level"`
	Format           string `koanf:"format"`
	EnableCaller     bool   `koanf:"enable_caller"`
	EnableStacktrace bool   `koanf:"enable_stacktrace"`
}

// GlassConfig holds translation engine configuration.
type GlassConfig struct {
	// Context selects the clinical calibration (pediatric_oncology,
	// palliative_care, general_oncology, ...).
	Context      string `koanf:"context"`
	HistoryLimit int    `koanf:"history_limit"`
}

// ProfilesConfig holds cultural profile directory configuration.
type ProfilesConfig struct {
	// Dir is an optional directory of additional TOML profiles loaded
	// on top of the embedded set.
	Dir string `koanf:"dir"`
	// Watch reloads the directory when profile files change.
	Watch bool `koanf:"watch"`
}

// StateConfig holds persistence configuration.
type StateConfig struct {
	// Dir holds the tracker and wisdom state files.
	Dir string `koanf:"dir"`
}

// TrackerStatePath returns the tracker state file under the state dir.
func (c *Config) TrackerStatePath() string {
	return filepath.Join(c.State.Dir, "tracker.json")
}

// TransformStatePath returns the transformer state file under the state dir.
func (c *Config) TransformStatePath() string {
	return filepath.Join(c.State.Dir, "wisdom.json")
}

// Validate validates the configuration.
//
// Returns an error if:
//   - Server port is not between 1 and 65535
//   - Shutdown timeout or rate limit is not positive
//   - Logging level or format is unknown
//   - Glass clinical context is unknown
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.Server.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %q (must be json or console)", c.Logging.Format)
	}

	if _, err := gct.ParseClinicalContext(c.Glass.Context); err != nil {
		return fmt.Errorf("invalid glass context: %w", err)
	}
	if c.Glass.HistoryLimit < 0 {
		return errors.New("glass history limit must not be negative")
	}

	return nil
}
