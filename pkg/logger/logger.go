package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is usable before Init; it falls back to slog's default logger.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

// Set replaces the package logger, mainly so tests can capture output.
func Set(l *slog.Logger) {
	if l != nil {
		Log = l
	}
}

// Discard silences logging.
func Discard() {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
}
