package tenant

import (
	"context"
	"log/slog"

	"github.com/menengai/edge/pkg/logger"
)

// contextKey prevents collisions with other packages using context values
type contextKey struct{}

func WithSlug(ctx context.Context, slug string) context.Context {
	return context.WithValue(ctx, contextKey{}, slug)
}

func SlugFromContext(ctx context.Context) (string, bool) {
	slug, ok := ctx.Value(contextKey{}).(string)
	return slug, ok && slug != ""
}

// LoggerExtractor returns a function that enriches log records with the tenant slug
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if slug, ok := SlugFromContext(ctx); ok {
			return logger.Tenant(slug), true
		}
		return slog.Attr{}, false
	}
}
