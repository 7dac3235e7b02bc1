// Package logging configures the slog logger used across the client.
// The TUI owns the terminal, so records go to a file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Options control where records go and at which level.
type Options struct {
	// Path of the log file. Empty disables file logging unless Debug is set,
	// in which case DefaultPath is used.
	Path        string
	DefaultPath string
	Debug       bool
}

// New opens the log file described by opts. The returned closer must be
// closed on exit; it is a no-op when logging is disabled.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	path := opts.Path
	if path == "" && opts.Debug {
		path = opts.DefaultPath
	}
	if path == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
