package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if mode := FromContext(ctx); mode != "" {
			return slog.String("mode", string(mode)), true
		}
		return slog.Attr{}, false
	}
}
