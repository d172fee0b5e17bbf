package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

// loadConfig reads the configuration named by --config and applies
// --difficulty on top of it.
func loadConfig() (config.PacmanConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PacmanConfig{}, err
	}

	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPacmanPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openLogFile opens path for appending, or returns io.Discard for "".
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}
