// Package orgdir answers the two membership questions the access guard asks:
// which organization a user belongs to, and what that organization's slug is.
//
// Two implementations are provided. REST queries the hosted backend's data API
// (PostgREST) with a service key, and Postgres queries the same tables over a
// pgx pool. Both perform single-record lookups and return ErrNotFound when no
// row matches. Neither caches.
//
// The embedded goose migrations create the two tables for local development
// databases; production schemas are owned by the hosted backend.
package orgdir
