package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds the attributes applied to the session cookies the gateway
// writes. Domain is usually ".{rootDomain}" so tenant subdomains share the
// session with the dashboard.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"true"`
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	// SameSite is one of lax, strict or none.
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: "lax",
	}
}

// ParseSameSite maps lax, strict and none (any case) to http.SameSite.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

// NewFromConfig creates a Manager from cfg; opts are applied last.
// An empty SameSite keeps the lax default.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts, WithSecure(cfg.Secure), WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != "" {
		mode, err := ParseSameSite(cfg.SameSite)
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, WithSameSite(mode))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...), nil
}
