package tenant

import (
	"github.com/menengai/edge/pkg/environment"
)

type Config struct {
	RootDomain         string   `env:"EDGE_ROOT_DOMAIN" envDefault:"menengai.cloud"`                   // RootDomain is the platform apex; tenants live one label below it.
	ReservedSubdomains []string `env:"EDGE_RESERVED_SUBDOMAINS" envSeparator:"," envDefault:"www,app"` // ReservedSubdomains never resolve to a tenant.
	OverrideParam      string   `env:"EDGE_TENANT_OVERRIDE_PARAM" envDefault:"tenant"`                 // OverrideParam is the development-only tenant query parameter.
}

// New builds the resolver used by the gateway.
// The query override is only wired in development so production tenants can
// never be spoofed through the query string.
func New(cfg Config, mode environment.Mode) Resolver {
	reserved := cfg.ReservedSubdomains
	if len(reserved) == 0 {
		reserved = DefaultReservedSubdomains
	}

	subdomain := NewSubdomainResolver(cfg.RootDomain, reserved...)
	if mode.IsProduction() {
		return subdomain
	}
	return NewCompositeResolver(subdomain, NewQueryResolver(cfg.OverrideParam))
}
