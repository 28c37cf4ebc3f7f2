// Package tenant derives the storefront tenant slug from an incoming request.
//
// Tenants are addressed canonically by subdomain of the platform root domain
// (acme.menengai.cloud). In development, where wildcard subdomains are not
// available, a query parameter (?tenant=acme) can stand in for the subdomain.
//
// Resolution is a pure function of request metadata. A Resolver returns an
// empty string when the request targets the main platform and an error wrapping
// ErrInvalidIdentifier when a candidate slug is malformed. Callers that route
// requests treat both as "no tenant".
//
// # Usage
//
//	resolve := tenant.New(tenant.Config{RootDomain: "menengai.cloud"}, environment.Production)
//
//	slug, err := resolve(r)
//	if err != nil || slug == "" {
//		// main platform
//	}
//
// Building blocks (NewSubdomainResolver, NewQueryResolver, NewCompositeResolver)
// are exported for callers that need a different precedence.
package tenant
