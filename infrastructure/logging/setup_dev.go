//go:build !prod

package logging

import (
	"log/slog"
	"os"
)

// Setup initializes logging for development mode: text output on stdout,
// no file output. Returns the configured logger, a no-op close function,
// and any error.
func Setup(cfg *Config) (*slog.Logger, func() error, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	})

	logger := slog.New(handler)
	setGlobal(logger)

	closeFn := func() error { return nil }

	return logger, closeFn, nil
}
