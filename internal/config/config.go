package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	DefaultVersion  = 1
	DefaultFileName = ".toybox.json"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Config defines program configuration stored in .toybox.json.
type Config struct {
	Version int        `json:"version"`
	Log     *LogConfig `json:"log,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level *string `json:"level,omitempty"`
}

// GetLevel returns the configured level name (default "info").
func (c *LogConfig) GetLevel() string {
	if c == nil || c.Level == nil {
		return DefaultLogLevel
	}
	return strings.ToLower(*c.Level)
}

// SlogLevel returns the configured level as a slog.Level.
// Invalid names fall back to info; Validate reports them.
func (c *LogConfig) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.GetLevel())
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Validate checks that the level name is known.
func (c *LogConfig) Validate() error {
	if c == nil || c.Level == nil {
		return nil
	}
	if _, err := ParseLevel(*c.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
	}
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data)
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	return nil
}

func decode(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
