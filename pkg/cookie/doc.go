// Package cookie builds session cookies with consistent attributes.
//
// A Manager holds default attributes (path, domain, secure, SameSite...) and
// produces *http.Cookie values for the caller to attach to a response. It
// does not write to an http.ResponseWriter itself, which lets request
// pipelines collect cookies on a response builder and flush them once on
// whichever exit path the request takes.
//
// # Usage
//
//	m, err := cookie.NewFromConfig(cfg)
//	if err != nil {
//		return err
//	}
//
//	c := m.Build("sb-access-token", token, cookie.WithMaxAge(3600))
//	res.SetCookie(c)
//
//	value, err := m.Get(r, "sb-access-token")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// anonymous request
//	}
package cookie
