package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Messenger.TickIntervalMS != 5 {
		t.Errorf("TickIntervalMS = %d, want 5", cfg.Messenger.TickIntervalMS)
	}
	if cfg.Window.Title != "Clac" {
		t.Errorf("Title = %q, want Clac", cfg.Window.Title)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
messenger:
  tick_interval_ms: 10
logging:
  level: debug
window:
  title: My Clac
  width: 300
  height: 500
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := cfg.Messenger.TickInterval(); got != 10*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 10ms", got)
	}
	if got := cfg.Logging.SlogLevel(); got != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", got)
	}
	if cfg.Window.Title != "My Clac" || cfg.Window.Width != 300 {
		t.Errorf("Window = %+v", cfg.Window)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("messenger: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

func TestLoad_ZeroTickIntervalFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("messenger:\n  tick_interval_ms: 0"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Messenger.TickIntervalMS != 5 {
		t.Errorf("TickIntervalMS = %d, want 5", cfg.Messenger.TickIntervalMS)
	}
}

func TestSlogLevel_Unknown(t *testing.T) {
	c := LoggingConfig{Level: "verbose"}
	if got := c.SlogLevel(); got != slog.LevelInfo {
		t.Errorf("SlogLevel() = %v, want info", got)
	}
}
