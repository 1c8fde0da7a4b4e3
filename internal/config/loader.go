package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/reflectd/internal/gct"
)

const maxConfigFileSize = 1024 * 1024 // 1MB

// LoadWithFile loads configuration from a YAML file, then overrides
// with environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (SERVER_HTTP_PORT, GLASS_CONTEXT, etc.)
//  2. YAML config file (~/.config/reflectd/config.yaml)
//  3. Hardcoded defaults
//
// The configPath parameter specifies the YAML file to load. If empty,
// the default path ~/.config/reflectd/config.yaml is used.
//
// Reflections fed to this daemon are personal, so the config file is
// held to the same standard as the state files: it must live in
// ~/.config/reflectd/ or /etc/reflectd/, be owner-readable only
// (0600 or 0400), and stay under 1MB.
//
// Environment variables map to YAML fields by splitting on the first
// underscore:
//
//	SERVER_HTTP_PORT -> server.http_port
//	GLASS_HISTORY_LIMIT -> glass.history_limit
//	PROFILES_DIR -> profiles.dir
func LoadWithFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "reflectd", "config.yaml")
	}

	if err := validateConfigPath(configPath); err != nil {
		return nil, fmt.Errorf("config path validation failed: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		// Open once and validate through the descriptor to avoid a
		// TOCTOU race between the stat and the read.
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if err := validateConfigFileProperties(info); err != nil {
			return nil, fmt.Errorf("config file validation failed: %w", err)
		}

		content, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Environment overrides. Split on the first underscore only, so
	// SERVER_HTTP_PORT becomes server.http_port.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		lower := strings.ToLower(s)
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// EnsureConfigDir creates the reflectd config directory if it doesn't
// exist. The directory is created owner-only because it will hold
// reflection-derived state.
func EnsureConfigDir() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "reflectd")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

// validateConfigPath checks if path is in an allowed directory. This
// validation runs even if the file doesn't exist yet.
func validateConfigPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	// Resolve symlinks so a link cannot escape the allowed directories.
	resolvedPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		// Paths that don't exist yet still get the prefix check.
		resolvedPath = absPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	allowedDirs := []string{
		filepath.Join(home, ".config", "reflectd"),
		"/etc/reflectd",
	}
	for _, dir := range allowedDirs {
		if strings.HasPrefix(resolvedPath, dir) {
			return nil
		}
	}
	return fmt.Errorf("config file must be in ~/.config/reflectd/ or /etc/reflectd/")
}

// validateConfigFileProperties checks file permissions and size using
// FileInfo from an already-opened descriptor.
func validateConfigFileProperties(info os.FileInfo) error {
	// Windows has a different permission model, skip the mode check.
	if runtime.GOOS != "windows" {
		perm := info.Mode().Perm()
		if perm != 0600 && perm != 0400 {
			return fmt.Errorf("insecure config file permissions: %v (expected 0600 or 0400)", perm)
		}
	}

	if info.Size() > maxConfigFileSize {
		return fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9310
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = 20
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Glass.Context == "" {
		cfg.Glass.Context = string(gct.ContextGeneralOncology)
	}
	if cfg.Glass.HistoryLimit == 0 {
		cfg.Glass.HistoryLimit = 500
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to relative paths; Validate does not require these.
		home = "."
	}
	if cfg.Profiles.Dir == "" {
		cfg.Profiles.Dir = filepath.Join(home, ".config", "reflectd", "profiles")
	}
	if cfg.State.Dir == "" {
		cfg.State.Dir = filepath.Join(home, ".config", "reflectd", "state")
	}
}
