package guard

import (
	"net/url"
	"path"
	"strings"

	"github.com/menengai/edge/pkg/routing"
)

// SafeRedirectTarget validates a post-login return path. It accepts only a
// relative path inside /{orgSlug} and returns it cleaned, with its query.
func SafeRedirectTarget(raw, orgSlug string) (string, bool) {
	if raw == "" || orgSlug == "" {
		return "", false
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n\t") {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return "", false
	}

	cleaned := path.Clean(u.Path)
	if !strings.EqualFold(routing.FirstSegment(cleaned), orgSlug) {
		return "", false
	}

	target := &url.URL{Path: cleaned, RawQuery: u.RawQuery}
	return target.String(), true
}
