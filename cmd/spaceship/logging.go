package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "spaceship",
		Level:           level,
	})
}

// openSessionLog returns the logger used while the TUI owns the terminal.
// Without a path the output is discarded.
func openSessionLog(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard, debug), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return newLogger(f, debug), func() { f.Close() }, nil
}
