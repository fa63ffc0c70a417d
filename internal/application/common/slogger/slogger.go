// Package slogger is the process-wide logging facade used below the command layer.
package slogger

import (
	"context"
	"sync"
	"time"

	"packagedsl/internal/application/common/logging"
)

// Fields is an alias for logging.Fields for convenience.
type Fields = logging.Fields

// LoggerManager guards the process-wide logger.
type LoggerManager struct {
	mu     sync.RWMutex
	logger logging.ApplicationLogger
}

var defaultManager = &LoggerManager{} //nolint:gochecknoglobals // Required for singleton logging infrastructure

func (lm *LoggerManager) get() logging.ApplicationLogger {
	lm.mu.RLock()
	logger := lm.logger
	lm.mu.RUnlock()
	if logger != nil {
		return logger
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()
	if lm.logger == nil {
		logger, err := logging.NewApplicationLogger(logging.Config{Level: "INFO", Format: "json", Output: "stderr"})
		if err != nil {
			// Fallback - this should not happen with valid config
			panic("Failed to initialize logger: " + err.Error())
		}
		lm.logger = logger
	}
	return lm.logger
}

func (lm *LoggerManager) set(logger logging.ApplicationLogger) {
	lm.mu.Lock()
	lm.logger = logger
	lm.mu.Unlock()
}

// Configure replaces the global logger with one built from config.
func Configure(config logging.Config) error {
	logger, err := logging.NewApplicationLogger(config)
	if err != nil {
		return err
	}
	defaultManager.set(logger)
	return nil
}

// SetGlobalLogger allows setting a custom global logger (useful for testing).
func SetGlobalLogger(logger logging.ApplicationLogger) {
	defaultManager.set(logger)
}

// Debug logs a debug message with context.
func Debug(ctx context.Context, msg string, fields Fields) {
	defaultManager.get().Debug(ctx, msg, fields)
}

// Info logs an info message with context.
func Info(ctx context.Context, msg string, fields Fields) {
	defaultManager.get().Info(ctx, msg, fields)
}

// Warn logs a warning message with context.
func Warn(ctx context.Context, msg string, fields Fields) {
	defaultManager.get().Warn(ctx, msg, fields)
}

// Error logs an error message with context.
func Error(ctx context.Context, msg string, fields Fields) {
	defaultManager.get().Error(ctx, msg, fields)
}

// ErrorWithError logs an error message with an error object and context.
func ErrorWithError(ctx context.Context, err error, msg string, fields Fields) {
	defaultManager.get().ErrorWithError(ctx, err, msg, fields)
}

// LogPerformance logs how long an operation took.
func LogPerformance(ctx context.Context, operation string, duration time.Duration, fields Fields) {
	defaultManager.get().LogPerformance(ctx, operation, duration, fields)
}

// Field creates a single-field Fields map.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Fields2 creates a Fields map with two key-value pairs.
func Fields2(k1 string, v1 interface{}, k2 string, v2 interface{}) Fields {
	return Fields{k1: v1, k2: v2}
}

// WithComponent returns a logger with a specific component name.
func WithComponent(component string) logging.ApplicationLogger {
	return defaultManager.get().WithComponent(component)
}
