package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
)

// slogLogger adapts a slog.Logger to Logger. Arguments are joined with fmt.Sprint,
// so callers write logger.Info("Saved ", n, " blocks").
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) slogLogger {
	return slogLogger{logger: slog.New(handler)}
}

// Debug logs key material and intermediate values such as p, q and d.
func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs at error level and exits with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg)
	panic(msg)
}

// parseLevel maps configured level names onto slog levels.
// slog has no critical level, so critical is logged as error.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
