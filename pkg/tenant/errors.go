package tenant

import "errors"

// ErrInvalidIdentifier is returned when a candidate slug is not DNS-safe.
var ErrInvalidIdentifier = errors.New("invalid tenant identifier")
