package identity

import "errors"

var (
	// ErrNoSession is wrapped by every Claims failure.
	ErrNoSession = errors.New("identity: no valid session")

	// ErrInvalidToken is returned when a token verifies but carries no subject.
	ErrInvalidToken = errors.New("identity: token has no subject")

	// ErrRefreshRejected is returned when the auth API refuses the refresh token.
	ErrRefreshRejected = errors.New("identity: refresh token rejected")

	// ErrRefreshFailed is returned when the refresh round trip could not complete.
	ErrRefreshFailed = errors.New("identity: refresh failed")

	// ErrMissingKey is returned by New when neither a JWT secret nor a JWKS URL is configured.
	ErrMissingKey = errors.New("identity: jwt secret or jwks url is required")

	// ErrMissingURL is returned by New when the auth service URL is not configured.
	ErrMissingURL = errors.New("identity: service url is required")
)
