package routing

import (
	"log/slog"

	"github.com/menengai/edge/pkg/environment"
)

type config struct {
	mode             environment.Mode
	rootDomain       string
	storefrontPrefix string
	reservedSegments []string
	publicPaths      []string
	logger           *slog.Logger
}

// Option configures the router.
type Option func(*config)

// WithMode sets the deployment mode. Defaults to production.
func WithMode(mode environment.Mode) Option {
	return func(c *config) { c.mode = mode }
}

// WithRootDomain sets the platform apex used to build tenant subdomain URLs.
func WithRootDomain(domain string) Option {
	return func(c *config) { c.rootDomain = domain }
}

// WithStorefrontPrefix sets the internal storefront path space.
func WithStorefrontPrefix(prefix string) Option {
	return func(c *config) { c.storefrontPrefix = prefix }
}

// WithReservedSegments replaces the top-level segments excluded from tenant and organization routing.
func WithReservedSegments(segments ...string) Option {
	return func(c *config) { c.reservedSegments = segments }
}

// WithPublicPaths replaces the exact-match public path set.
func WithPublicPaths(paths ...string) Option {
	return func(c *config) { c.publicPaths = paths }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
