package logger

import (
	"log/slog"

	"bscscan_node/internal/app/port"
)

// slogAdapter implements port.Logger on top of a slog.Logger.
type slogAdapter struct {
	log *slog.Logger
}

// NewSlogAdapter wraps l; a nil l uses the global slog logger.
func NewSlogAdapter(l *slog.Logger) port.Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogAdapter{log: l}
}

// Info logs an informational message.
func (a *slogAdapter) Info(msg string, args ...any) {
	a.log.Info(msg, args...)
}

// Debug logs a debug message.
func (a *slogAdapter) Debug(msg string, args ...any) {
	a.log.Debug(msg, args...)
}

// Warn logs a warning message.
func (a *slogAdapter) Warn(msg string, args ...any) {
	a.log.Warn(msg, args...)
}

// Error logs an error message.
func (a *slogAdapter) Error(msg string, args ...any) {
	a.log.Error(msg, args...)
}

// With returns an adapter that adds args to every entry.
func (a *slogAdapter) With(args ...any) port.Logger {
	return &slogAdapter{log: a.log.With(args...)}
}
