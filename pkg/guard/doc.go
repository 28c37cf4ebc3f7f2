// Package guard enforces session and organization membership on platform
// routes the routing table hands over.
//
// For each request the guard asks the identity service for claims, then, when
// the path requires it, asks the organization directory for the caller's
// organization and its slug. Both lookups are sequential, bounded by a
// timeout, and never cached. Any failure is treated as the negative answer:
// a missing session or a missing membership both send the caller to the login
// page, and a wrong organization is indistinguishable from either.
//
// Outcomes are recorded on the routing.Response passed in, alongside any
// session cookies the identity service rotated while checking the request.
//
//	g := guard.New(identityClient, directory,
//		guard.WithLookupTimeout(2*time.Second),
//		guard.WithLogger(log),
//	)
//	router, err := routing.New(resolve, g, routing.WithRootDomain("menengai.cloud"))
package guard
