package debug

import (
	"context"
	"log/slog"
)

var (
	logger = slog.New(noOp{})
)

// RegisterLogger replaces the handler used for the package's own diagnostics.
func RegisterLogger(h slog.Handler) {
	if h == nil {
		h = noOp{}
	}
	logger = slog.New(h)
}

// Log writes the message to the configured log handler.
// Level is one of the log/slog levels. Arguments are slog key/value pairs or slog.Attr.
func Log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logger.Log(ctx, level, msg, args...)
}
