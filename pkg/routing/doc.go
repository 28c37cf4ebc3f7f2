// Package routing decides, once per request, whether the gateway rewrites the
// request onto a tenant storefront, redirects it to the canonical tenant
// subdomain, passes it through, or hands it to the access guard.
//
// # Architecture
//
// The router evaluates an ordered table of Rules. Each rule pairs a predicate
// over the request metadata (Input) with an action that records its outcome on
// a Response builder. The first matching rule wins:
//
//  1. tenant-rewrite        tenant resolved, path outside the storefront prefix
//  2. tenant-passthrough    tenant resolved, path already under the prefix
//  3. storefront-canonical  /store/{slug}/... on a production host, 308 to the subdomain
//  4. storefront-local      /store/{slug}/... on a local host, pass through
//  5. settings-canonical    /{slug}/settings/... on a production host, 308 to the subdomain
//  6. public                public pages that need no session
//  7. guard                 everything else is delegated to the Guard
//
// The Response builder is created per request and threaded through the rules
// and the guard, so cookies refreshed by the guard survive whichever exit the
// request takes. Response.Apply writes it out: redirects are answered directly,
// rewrites and pass-throughs are forwarded to the next handler.
//
// Static assets are skipped before any of this runs.
//
// # Usage
//
//	rt := routing.NewFromConfig(cfg, mode, tenant.New(tenantCfg, mode), accessGuard,
//		routing.WithLogger(log),
//	)
//	handler := rt.Handler(upstreamProxy)
package routing
