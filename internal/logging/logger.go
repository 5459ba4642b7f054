package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger for an interactive shell writing to w (Stderr when nil).
// Timestamps are dropped so log lines read like shell output, and the
// "error" key is standardized to "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})).With("component", "cmdline")
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
