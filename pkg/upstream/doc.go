// Package upstream forwards requests the routing table lets through to the
// platform application.
//
// The proxy keeps the path it is given, so a request rewritten to
// /store/{tenant}/... reaches the storefront renderer under that path while
// the browser still shows the original URL. X-Forwarded-* headers describe
// the client-facing request, X-Tenant-Slug names the resolved tenant (any
// inbound value is discarded) and X-Request-ID carries the correlation id.
package upstream
