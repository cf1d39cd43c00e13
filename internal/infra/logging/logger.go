// Package logging builds the slog logger used for diagnostics.
// Every record of one generator run carries the same run_id attribute.
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Options configures New.
type Options struct {
	RunID string // Defaults to a fresh UUID
	Level slog.Level
}

// New returns a text logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})
	return slog.New(handler).With("run_id", runID)
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
