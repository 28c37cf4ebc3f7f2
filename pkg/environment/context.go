package environment

import "context"

type contextKey struct{}

// WithContext adds the deployment mode to context
func WithContext(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, contextKey{}, mode)
}

// FromContext retrieves the deployment mode from context.
// Returns an empty Mode when none was attached.
func FromContext(ctx context.Context) Mode {
	if ctx == nil {
		return ""
	}
	mode, _ := ctx.Value(contextKey{}).(Mode)
	return mode
}
