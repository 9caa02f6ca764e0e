package aab2apk

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
)

// NewLogger returns a logger writing to stderr that shows messages
// up to the given verbosity.
func NewLogger(verbosity int) logr.Logger {
	return logr.FromSlogHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(-4 * verbosity),
	}))
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// LoggerFrom returns the logger carried by the given context, or a
// discarding logger if there is none.
func LoggerFrom(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
