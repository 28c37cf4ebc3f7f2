package identity

import (
	"log/slog"
	"net/http"
)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for refresh and JWKS requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
