package logger

import (
	"fmt"
	"sync"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger builds the process-wide logger from settings. Only the first call has an
// effect; later calls return the outcome of the first.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("logger settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeFile:
		return NewFileLogger(settings), nil
	default:
		return NewConsoleLogger(settings.LogLevel), nil
	}
}
