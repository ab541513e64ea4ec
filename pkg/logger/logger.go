// Package logger provides structured logging for the Rai Go SDK.
// The SDK logs nothing unless the caller injects a Logger implementation;
// internal/monitoring provides a zap-backed one.
package logger

import "context"

// Fields is a set of key-value pairs attached to a log entry.
type Fields map[string]interface{}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(ctx context.Context, msg string, fields ...Fields)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, fields ...Fields)

	// Warn logs a warning message.
	Warn(ctx context.Context, msg string, fields ...Fields)

	// Error logs an error message.
	Error(ctx context.Context, msg string, err error, fields ...Fields)

	// WithFields creates a new logger that attaches the given fields to
	// every entry.
	WithFields(fields Fields) Logger
}
