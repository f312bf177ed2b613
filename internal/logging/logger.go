package logging

import (
	"io"
	"log/slog"
)

// NewTestLogger returns a logger that drops every record, so tests can drive
// the shredding services without their diagnostics reaching the test output.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
