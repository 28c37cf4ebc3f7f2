package routing_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menengai/edge/pkg/routing"
)

func TestIsStaticAsset(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/_next/static/css/app.css", "/_next/image", "/favicon.ico", "/img/a.svg", "/a.JPEG", "/b.webp", "/c.gif"} {
		assert.True(t, routing.IsStaticAsset(p), p)
	}
	for _, p := range []string{"/", "/products", "/_next/data/x.json", "/store/acme/logo", "/svg"} {
		assert.False(t, routing.IsStaticAsset(p), p)
	}
}

func TestIsPublicPath(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/", "/auth/login", "/auth/sign-up", "/auth/sign-up-success", "/auth/forgot-password", "/auth/callback", "/auth/confirm", "/auth/anything", "/store/acme/x", "/store"} {
		assert.True(t, routing.IsPublicPath(p), p)
	}
	for _, p := range []string{"/dashboard", "/acme", "/authx", "/storefront", "/api/orders"} {
		assert.False(t, routing.IsPublicPath(p), p)
	}
}

func TestSegmentHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, routing.IsAuthPath("/auth"))
	assert.True(t, routing.IsAuthPath("/auth/login"))
	assert.False(t, routing.IsAuthPath("/author"))

	assert.True(t, routing.HasSegmentPrefix("/store", "/store"))
	assert.True(t, routing.HasSegmentPrefix("/store/a", "/store"))
	assert.False(t, routing.HasSegmentPrefix("/storefront", "/store"))

	assert.Equal(t, "acme", routing.FirstSegment("/acme/settings"))
	assert.Equal(t, "acme", routing.FirstSegment("/acme"))
	assert.Equal(t, "", routing.FirstSegment("/"))
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	plain.Host = "app.menengai.cloud"
	assert.Equal(t, "http", routing.Scheme(plain))
	assert.Equal(t, "http://app.menengai.cloud", routing.Origin(plain))

	secure := plain.Clone(plain.Context())
	secure.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https", routing.Scheme(secure))

	forwarded := plain.Clone(plain.Context())
	forwarded.Header.Set("X-Forwarded-Proto", "HTTPS")
	assert.Equal(t, "https://app.menengai.cloud", routing.Origin(forwarded))
	assert.Equal(t, "https", routing.ForwardedProto(forwarded))

	forwarded.Header.Set("X-Forwarded-Proto", "ftp")
	assert.Equal(t, "", routing.ForwardedProto(forwarded))
}

func TestIsLocalHost(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"", "localhost", "localhost:3000", "shop.localhost", "127.0.0.1", "[::1]:8080", "0.0.0.0"} {
		assert.True(t, routing.IsLocalHost(h), h)
	}
	for _, h := range []string{"app.menengai.cloud", "acme.menengai.cloud:443", "10.0.0.4", "localhost.example.com"} {
		assert.False(t, routing.IsLocalHost(h), h)
	}
}
