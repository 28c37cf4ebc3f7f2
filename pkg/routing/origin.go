package routing

import (
	"net"
	"net/http"
	"strings"

	"github.com/menengai/edge/pkg/tenant"
)

// HeaderForwardedProto is set by TLS-terminating proxies in front of the gateway.
const HeaderForwardedProto = "X-Forwarded-Proto"

// ForwardedProto returns the first X-Forwarded-Proto value when it is http or https.
func ForwardedProto(r *http.Request) string {
	v := r.Header.Get(HeaderForwardedProto)
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "http" || v == "https" {
		return v
	}
	return ""
}

// Scheme returns the scheme the client used to reach the gateway.
func Scheme(r *http.Request) string {
	if p := ForwardedProto(r); p != "" {
		return p
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// Origin returns scheme://host of the incoming request.
func Origin(r *http.Request) string {
	return Scheme(r) + "://" + r.Host
}

// IsLocalHost reports whether host points at a developer machine, where
// wildcard subdomains cannot be served.
func IsLocalHost(host string) bool {
	h := tenant.NormalizeHost(host)
	if h == "" || h == "localhost" || strings.HasSuffix(h, ".localhost") {
		return true
	}
	h = strings.Trim(h, "[]")
	if ip := net.ParseIP(h); ip != nil {
		return ip.IsLoopback() || ip.IsUnspecified()
	}
	return false
}
