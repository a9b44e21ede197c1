package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newFileLogger returns the logger for local play. Bubble Tea owns the
// terminal, so logs go to --log or are discarded.
func newFileLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "skirun",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// newServerLogger returns a stderr logger for the SSH server.
func newServerLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skirun-ssh",
		Level:           level,
	}), nil
}

// localPlayer names the player recorded with local runs.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
