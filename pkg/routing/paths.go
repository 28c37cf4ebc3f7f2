package routing

import (
	"path"
	"strings"
)

const (
	// AuthPrefix is the root of the login, sign-up and callback flow.
	AuthPrefix = "/auth"

	// DefaultStorefrontPrefix is the internal path space served by the storefront renderer.
	DefaultStorefrontPrefix = "/store"

	// FrameworkPrefix is the upstream framework's internal asset segment.
	FrameworkPrefix = "_next"
)

// DefaultReservedSegments are top-level path segments that never name a tenant or organization.
var DefaultReservedSegments = []string{"auth", "store", "api", "dashboard", FrameworkPrefix}

// DefaultPublicPaths are served without a session.
var DefaultPublicPaths = []string{
	"/",
	"/auth/login",
	"/auth/sign-up",
	"/auth/sign-up-success",
	"/auth/forgot-password",
	"/auth/callback",
	"/auth/confirm",
}

var staticPrefixes = []string{
	"/" + FrameworkPrefix + "/static/",
	"/" + FrameworkPrefix + "/image",
	"/favicon.ico",
}

var staticExtensions = map[string]struct{}{
	".svg":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// IsStaticAsset reports whether p is an image, the favicon or a framework build asset.
func IsStaticAsset(p string) bool {
	for _, prefix := range staticPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	_, ok := staticExtensions[strings.ToLower(path.Ext(p))]
	return ok
}

// IsAuthPath reports whether p belongs to the authentication flow.
func IsAuthPath(p string) bool {
	return HasSegmentPrefix(p, AuthPrefix)
}

// HasSegmentPrefix reports whether p equals prefix or continues it with a slash.
// "/storefront" is not under "/store".
func HasSegmentPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// FirstSegment returns the first path segment of p without slashes.
func FirstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

// splitFirstSegment splits "/seg/rest" into "seg" and "/rest".
// rest is empty when p has a single segment.
func splitFirstSegment(p string) (string, string) {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i], p[i:]
	}
	return p, ""
}

// IsPublicPath reports whether p is served without a session under the default
// path layout: the public set plus everything under /auth and /store.
func IsPublicPath(p string) bool {
	for _, public := range DefaultPublicPaths {
		if p == public {
			return true
		}
	}
	return IsAuthPath(p) || HasSegmentPrefix(p, DefaultStorefrontPrefix)
}
