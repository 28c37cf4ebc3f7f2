package tenant

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
)

const (
	// MaxSlugLength matches the DNS label limit so every slug can be a subdomain.
	MaxSlugLength = 63

	// DefaultOverrideParam is the query parameter consulted in development.
	DefaultOverrideParam = "tenant"
)

// DefaultReservedSubdomains are labels of the root domain that belong to the platform itself.
var DefaultReservedSubdomains = []string{"www", "app"}

// slugPattern: lowercase alphanumeric, inner hyphens, no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Resolver extracts a tenant slug from an HTTP request.
// Returns empty string if no tenant found, error if a candidate was malformed.
type Resolver func(r *http.Request) (string, error)

// ValidSlug reports whether s can be used both as a path segment and as a DNS label.
func ValidSlug(s string) bool {
	if s == "" || len(s) > MaxSlugLength {
		return false
	}
	return slugPattern.MatchString(s)
}

// NormalizeHost lowercases the host, strips the port and a trailing dot.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}

// NewSubdomainResolver extracts the tenant from a host of the form {slug}.{rootDomain}.
// For deeper hosts such as a.b.{rootDomain} the leading label is the tenant.
// The bare root domain and reserved labels resolve to no tenant.
func NewSubdomainResolver(rootDomain string, reserved ...string) Resolver {
	root := strings.Trim(strings.ToLower(strings.TrimSpace(rootDomain)), ".")
	suffix := "." + root

	skip := make(map[string]struct{}, len(reserved))
	for _, label := range reserved {
		skip[strings.ToLower(label)] = struct{}{}
	}

	return func(req *http.Request) (string, error) {
		if root == "" {
			return "", nil
		}

		host := NormalizeHost(req.Host)
		if !strings.HasSuffix(host, suffix) {
			return "", nil
		}

		label, _, _ := strings.Cut(strings.TrimSuffix(host, suffix), ".")
		if label == "" {
			return "", nil
		}
		if _, ok := skip[label]; ok {
			return "", nil
		}

		if !ValidSlug(label) {
			return "", fmt.Errorf("%w: subdomain '%s'", ErrInvalidIdentifier, label)
		}
		return label, nil
	}
}

// NewQueryResolver extracts the tenant from a query parameter.
// Defaults to "tenant" if param is empty.
func NewQueryResolver(param string) Resolver {
	if param == "" {
		param = DefaultOverrideParam
	}

	return func(req *http.Request) (string, error) {
		value := strings.ToLower(strings.TrimSpace(req.URL.Query().Get(param)))
		if value == "" {
			return "", nil
		}
		if !ValidSlug(value) {
			return "", fmt.Errorf("%w: query value '%s'", ErrInvalidIdentifier, value)
		}
		return value, nil
	}
}

// NewCompositeResolver tries multiple resolvers in order, returning the first non-empty result.
// Aggregates errors from all resolvers for debugging.
func NewCompositeResolver(resolvers ...Resolver) Resolver {
	return func(r *http.Request) (string, error) {
		var errs []error

		for _, resolver := range resolvers {
			id, err := resolver(r)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if id != "" {
				return id, nil
			}
		}

		if len(errs) > 0 {
			return "", fmt.Errorf("composite resolver errors: %w", errors.Join(errs...))
		}

		return "", nil
	}
}
