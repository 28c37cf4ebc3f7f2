package guard

import (
	"log/slog"
	"time"
)

type config struct {
	loginPath     string
	redirectParam string
	timeout       time.Duration
	reserved      []string
	isPublic      func(string) bool
	logger        *slog.Logger
}

// Option configures the Guard.
type Option func(*config)

// WithLookupTimeout bounds each identity and directory lookup.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLoginPath sets the path unauthenticated callers are sent to.
func WithLoginPath(p string) Option {
	return func(c *config) {
		if p != "" {
			c.loginPath = p
		}
	}
}

// WithRedirectParam sets the query parameter carrying the post-login return path.
func WithRedirectParam(name string) Option {
	return func(c *config) {
		if name != "" {
			c.redirectParam = name
		}
	}
}

// WithReservedSegments replaces the top-level segments that never name an organization.
func WithReservedSegments(segments ...string) Option {
	return func(c *config) { c.reserved = segments }
}

// WithPublicMatcher replaces the check for paths that need no session.
func WithPublicMatcher(fn func(string) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.isPublic = fn
		}
	}
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
