// Package config loads the application configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Messenger MessengerConfig `yaml:"messenger"`
	Logging   LoggingConfig   `yaml:"logging"`
	Window    WindowConfig    `yaml:"window"`
}

// MessengerConfig configures the message bus.
type MessengerConfig struct {
	// TickIntervalMS is the delivery tick period in milliseconds.
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// TickInterval returns the tick period as a duration.
func (c MessengerConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`
	// Dir is the log file directory (prod builds only).
	Dir string `yaml:"dir"`
}

// SlogLevel maps the configured level name onto a slog level, defaulting to
// info for unknown names.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WindowConfig configures the main window.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Messenger: MessengerConfig{TickIntervalMS: 5},
		Logging:   LoggingConfig{Level: "info"},
		Window:    WindowConfig{Title: "Clac", Width: 260, Height: 420},
	}
}

// DefaultPath returns the expected config file location,
// UserConfigDir()/clac/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "clac", "config.yaml")
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned. A present but unreadable or malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Messenger.TickIntervalMS <= 0 {
		cfg.Messenger.TickIntervalMS = 5
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Clac"
	}

	return cfg, nil
}
