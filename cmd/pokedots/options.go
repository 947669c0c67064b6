package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poke-the-dots/internal/config"
	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(path string, fps int) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if fps != 0 {
		cfg.FrameRate = fps
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pokedots",
		Level:           lvl,
	}), nil
}

// logOutput picks where logs go. Terminal frontends own the screen, so they
// only log to a file.
func logOutput(path string, terminal bool) (io.Writer, func() error, error) {
	nop := func() error { return nil }
	if path == "" {
		if terminal {
			return io.Discard, nop, nil
		}
		return os.Stderr, nop, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// sessionOptions resolves everything a frontend needs from the global flags.
// The returned close function releases the log file.
func sessionOptions(terminal bool) (registry.Options, func() error, error) {
	cfg, err := loadConfig(flagConfig, flagFPS)
	if err != nil {
		return registry.Options{}, nil, err
	}

	w, closeLog, err := logOutput(flagLogFile, terminal)
	if err != nil {
		return registry.Options{}, nil, err
	}
	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		closeLog() //nolint:errcheck // Nothing was written yet
		return registry.Options{}, nil, err
	}

	return registry.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	}, closeLog, nil
}
