package environment

import (
	"fmt"
	"strings"
)

// Mode is the deployment mode the gateway was started with.
type Mode string

const (
	// Development disables subdomain canonicalisation and enables the
	// tenant override query parameter.
	Development Mode = "development"
	// Production enables canonical subdomain redirects.
	Production Mode = "production"
)

// ParseMode converts a configured environment name into a Mode.
// Empty input defaults to Production so a missing variable never enables
// development conveniences on a public deployment.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "production", "prod", "staging", "stage":
		return Production, nil
	case "development", "dev", "local", "test":
		return Development, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MustParseMode is like ParseMode but panics on unknown input.
func MustParseMode(s string) Mode {
	m, err := ParseMode(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Mode) IsProduction() bool { return m == Production }

func (m Mode) IsDevelopment() bool { return m == Development }

func (m Mode) String() string { return string(m) }
