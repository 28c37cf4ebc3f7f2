package routing

import (
	"github.com/menengai/edge/pkg/environment"
	"github.com/menengai/edge/pkg/tenant"
)

type Config struct {
	RootDomain       string   `env:"EDGE_ROOT_DOMAIN" envDefault:"menengai.cloud"`                                        // RootDomain is the platform apex.
	StorefrontPrefix string   `env:"EDGE_STOREFRONT_PREFIX" envDefault:"/store"`                                          // StorefrontPrefix is the internal storefront path space.
	ReservedSegments []string `env:"EDGE_RESERVED_SEGMENTS" envSeparator:"," envDefault:"auth,store,api,dashboard,_next"` // ReservedSegments never name an organization.
}

// NewFromConfig creates a Router from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, mode environment.Mode, resolve tenant.Resolver, guard Guard, opts ...Option) (*Router, error) {
	configOpts := []Option{WithMode(mode)}

	if cfg.RootDomain != "" {
		configOpts = append(configOpts, WithRootDomain(cfg.RootDomain))
	}
	if cfg.StorefrontPrefix != "" {
		configOpts = append(configOpts, WithStorefrontPrefix(cfg.StorefrontPrefix))
	}
	if len(cfg.ReservedSegments) > 0 {
		configOpts = append(configOpts, WithReservedSegments(cfg.ReservedSegments...))
	}

	configOpts = append(configOpts, opts...)

	return New(resolve, guard, configOpts...)
}
