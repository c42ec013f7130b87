package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagVerbose    bool
)

// loadGameConfig loads the game config and difficulty from the shared flags.
func loadGameConfig() (config.RunGunConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunGunConfig{}, "", err
	}
	cfg, err := config.LoadRunGun(flagConfig)
	if err != nil {
		return config.RunGunConfig{}, "", err
	}
	return cfg, preset, nil
}

// openLogger returns a file logger for --log, or a discarding one.
// The returned closer must be called when the host exits.
func openLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, f, nil
}

// openStore opens the runs database, warning instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// playerName returns the local user name for run records.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
