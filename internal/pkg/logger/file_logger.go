package logger

import (
	"log/slog"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON records to a file rotated by lumberjack.
type FileLogger struct {
	slogLogger
	writer *lumberjack.Logger
}

// NewFileLogger creates a file logger from validated file logger settings.
func NewFileLogger(settings *config.LoggerSettings) *FileLogger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	return &FileLogger{
		slogLogger: newSlogLogger(handler),
		writer:     writer,
	}
}

// Close closes the current log file.
func (l *FileLogger) Close() error {
	return l.writer.Close()
}
