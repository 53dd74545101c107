// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"
	"log/slog"
)

// LoggerKey is the context key for the slog.Logger.
type LoggerKey struct{}

// WithLogger returns a context with the logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey{}, logger)
}

// Logger returns the logger from context, or slog.Default() if none is set.
func Logger(ctx context.Context) *slog.Logger {
	if v, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok && v != nil {
		return v
	}
	return slog.Default()
}
