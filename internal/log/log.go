// SPDX-License-Identifier: MIT

// Package log provides structured logging for the Gröbner basis engine.
// It wraps Go's log/slog with engine-specific conveniences, namely
// per-subsystem child loggers ("monomial", "reducer", "spair", "f4",
// "groebner"). Logging setup, rotation, and destination plumbing are
// project packaging concerns and stay out of scope: callers configure
// a slog.Handler and hand it to NewWithHandler.
package log

import (
	"log/slog"
	"os"
	"sync"
)

// Logger wraps slog.Logger with engine-specific context.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by every package's
// package-level `logger` var. It is built lazily, not in an init(), so
// merely importing this module never writes to stderr or otherwise
// touches process-wide state before a caller actually asks for a
// logger — a daemon can reasonably configure logging as part of
// startup, but a library embedded in someone else's process should not
// perform I/O setup as a side effect of being imported.
var (
	defaultLogger     *Logger
	defaultLoggerOnce sync.Once
)

// defaultLevel is Warn rather than Info: a Gröbner basis computation
// embedded in a caller's program should stay quiet by default (no
// per-S-pair chatter on every run). SetDefault only affects loggers
// obtained from Default afterwards: the engine packages derive their
// subsystem loggers from Default when they are initialized, so their
// Info-level lines (PrintInterval progress, breakAfter) are filtered
// at this level and a later SetDefault does not change that.
const defaultLevel = slog.LevelWarn

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler.
// Useful for tests, or for routing engine logs into a caller-owned
// sink instead of stderr.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger,
// constructing it on first use at defaultLevel.
func Default() *Logger {
	defaultLoggerOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New(defaultLevel)
		}
	})
	return defaultLogger
}

// Subsystem returns a child logger tagged with the given subsystem
// name (e.g. "monomial", "reducer", "spair", "f4", "groebner"). This
// is the primary way engine packages obtain their own contextual
// logger without importing a global.
func (l *Logger) Subsystem(name string) *Logger {
	return &Logger{inner: l.inner.With("subsystem", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
