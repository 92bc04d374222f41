package testhelpers

import (
	"io"
	"log/slog"

	"github.com/27achang/2024WinterFinal/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.NewLogger(logSink, slog.LevelDebug)
}
