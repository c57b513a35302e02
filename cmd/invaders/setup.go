package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// loadConfig loads the config file chain, applies flag overrides and
// validates the result. It also returns the file the config came from.
func loadConfig() (config.InvadersConfig, string, error) {
	cfg, source, err := config.ResolveInvaders(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if flagFPS > 0 {
		cfg.Frame.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// newLogger builds the CLI logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	}), nil
}

// openLogSink returns where logs go: the --log-file if set, otherwise
// fallback. The returned close function is always safe to call.
func openLogSink(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
