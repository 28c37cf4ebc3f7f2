package guard

import "time"

type Config struct {
	LoginPath     string        `env:"GUARD_LOGIN_PATH" envDefault:"/auth/login"`
	RedirectParam string        `env:"GUARD_REDIRECT_PARAM" envDefault:"redirect"`
	LookupTimeout time.Duration `env:"GUARD_LOOKUP_TIMEOUT" envDefault:"3s"`
}

// NewFromConfig creates a Guard from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, claims ClaimsSource, dir Directory, opts ...Option) *Guard {
	configOpts := []Option{
		WithLoginPath(cfg.LoginPath),
		WithRedirectParam(cfg.RedirectParam),
		WithLookupTimeout(cfg.LookupTimeout),
	}
	return New(claims, dir, append(configOpts, opts...)...)
}
