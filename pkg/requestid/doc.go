// Package requestid assigns every request a correlation id.
//
// Middleware keeps a client- or proxy-supplied X-Request-ID when it is short
// and made of safe characters, otherwise it generates a UUID. The id is
// stored in the request context, echoed on the response and forwarded
// upstream in the request header. LoggerExtractor feeds it into the logger's
// context decorator as request_id.
package requestid
