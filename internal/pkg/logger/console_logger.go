package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes text records to stderr. Stdout carries command output such as
// ciphertext, so log lines never mix into it.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger at the given level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{slogLogger: newSlogLogger(handler)}
}
