// Package logging provides structured logging configuration using log/slog.
//
// Each table decode gets its own child logger carrying a decode_id, so that
// per-row warnings from one decode can be correlated.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Logs go to stderr so that decoded output on stdout stays machine readable.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// New returns a logger writing to w with the given level and format.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForDecode returns a child of base tagged with a fresh decode_id and, when
// known, the source being decoded.
//
// Usage:
//
//	logger := logging.ForDecode(slog.Default(), path)
//	logger.Warn("row decode failed", "row", 3)
func ForDecode(base *slog.Logger, source string) *slog.Logger {
	logger := base.With("decode_id", uuid.NewString())
	if source != "" {
		logger = logger.With("source", source)
	}
	return logger
}
