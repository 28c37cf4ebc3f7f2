package routing

import "errors"

var (
	// ErrInvalidPrefix is returned when the storefront prefix is not a single absolute path segment.
	ErrInvalidPrefix = errors.New("routing: storefront prefix must look like /segment")

	// ErrMissingRootDomain is returned when no root domain is configured.
	ErrMissingRootDomain = errors.New("routing: root domain is required")
)
