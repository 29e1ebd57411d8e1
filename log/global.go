package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// defaultLogger is the process-wide logger used by the package-level
// logging functions. It writes to stderr so rendered template output on
// stdout stays clean.
//
//nolint:gochecknoglobals
var (
	defaultMutex  sync.RWMutex
	defaultLogger = Make(os.Stderr)
)

// Config reconfigures the process-wide default logger.
// Options are applied on top of the current configuration, so repeated
// calls accumulate.
func Config(opts ...Option) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLogger = defaultLogger.Wrap(opts...)
}

// Default returns the current process-wide default logger.
func Default() Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultLogger
}

// TraceContext logs a message at Trace level to the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Trace logs a message at Trace level to the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().Trace(msg, attrs...)
}

// DebugContext logs a message at Debug level to the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level to the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().Debug(msg, attrs...)
}

// InfoContext logs a message at Info level to the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Info logs a message at Info level to the default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().Info(msg, attrs...)
}

// WarnContext logs a message at Warn level to the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level to the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().Warn(msg, attrs...)
}

// ErrorContext logs a message at Error level to the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}

// Error logs a message at Error level to the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().Error(msg, attrs...)
}
