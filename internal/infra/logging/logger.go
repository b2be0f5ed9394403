// Package logging provides logger construction for cargo-testify.
// Diagnostics go to stderr so the echoed test output on stdout stays
// byte-identical to running the command directly.
package logging

import (
	"io"
	"log/slog"
)

// New creates a logger writing human-readable lines to w at the given
// level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
