// Package identity validates the hosted backend's session cookies and yields
// the authenticated subject.
//
// The access token cookie holds a JWT issued by the hosted auth service. It is
// verified locally, either with the project's shared HS256 secret or with the
// service's JWKS endpoint. When the access token is missing or no longer valid
// and a refresh token cookie is present, the client performs a single refresh
// round trip against the auth API and queues the rotated cookies on the
// caller's response through a CookieSink. Callers that drop those cookies
// silently log the user out on the next request.
//
// Every failure, including timeouts, is reported as an error wrapping
// ErrNoSession so callers can fail closed with a single errors.Is check.
//
// # Usage
//
//	cookies, err := cookie.NewFromConfig(cookieCfg)
//	...
//	client, err := identity.New(cfg, cookies, identity.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	claims, err := client.Claims(ctx, r, res)
//	if errors.Is(err, identity.ErrNoSession) {
//		// anonymous
//	}
package identity
