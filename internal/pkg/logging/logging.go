// Package logging builds the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to stdout. Components derive their
// own loggers from it with With("component", ...).
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
