package orgdir

import "errors"

var (
	// ErrNotFound is returned when no membership or organization row matches.
	ErrNotFound = errors.New("orgdir: not found")

	// ErrLookupFailed wraps transport and decoding failures.
	ErrLookupFailed = errors.New("orgdir: lookup failed")

	// ErrUnknownDriver is returned by New for unsupported drivers.
	ErrUnknownDriver = errors.New("orgdir: unknown driver")

	// ErrMissingPool is returned by New when the postgres driver is selected without a pool.
	ErrMissingPool = errors.New("orgdir: postgres driver requires a connection pool")
)
