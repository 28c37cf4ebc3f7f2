package identity

import "time"

type Config struct {
	URL           string        `env:"IDENTITY_URL,required"`                                 // URL is the hosted backend base URL.
	AnonKey       string        `env:"IDENTITY_ANON_KEY,required"`                            // AnonKey is the public API key sent with refresh requests.
	JWTSecret     string        `env:"IDENTITY_JWT_SECRET"`                                   // JWTSecret verifies HS256 access tokens.
	JWKSURL       string        `env:"IDENTITY_JWKS_URL"`                                     // JWKSURL verifies asymmetric access tokens when no secret is set.
	JWKSTTL       time.Duration `env:"IDENTITY_JWKS_TTL" envDefault:"6h"`                     // JWKSTTL is how long a fetched key set is reused.
	Issuer        string        `env:"IDENTITY_ISSUER"`                                       // Issuer, when set, must match the iss claim.
	Audience      string        `env:"IDENTITY_AUDIENCE" envDefault:"authenticated"`          // Audience, when set, must be present in the aud claim.
	ClockSkew     time.Duration `env:"IDENTITY_CLOCK_SKEW" envDefault:"30s"`                  // ClockSkew tolerated on exp/nbf/iat.
	AccessCookie  string        `env:"IDENTITY_ACCESS_COOKIE" envDefault:"sb-access-token"`   // AccessCookie holds the access JWT.
	RefreshCookie string        `env:"IDENTITY_REFRESH_COOKIE" envDefault:"sb-refresh-token"` // RefreshCookie holds the refresh token.
	RefreshMaxAge time.Duration `env:"IDENTITY_REFRESH_MAX_AGE" envDefault:"720h"`            // RefreshMaxAge is the lifetime given to a rotated refresh cookie.
	HTTPTimeout   time.Duration `env:"IDENTITY_HTTP_TIMEOUT" envDefault:"5s"`                 // HTTPTimeout bounds refresh and JWKS requests.
}
