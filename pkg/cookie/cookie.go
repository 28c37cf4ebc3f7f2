package cookie

import (
	"errors"
	"net/http"
	"time"
)

type Manager struct {
	defaults Options
}

func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Build returns a cookie carrying the manager defaults overridden by opts.
func (m *Manager) Build(name, value string, opts ...Option) *http.Cookie {
	options := applyOptions(m.defaults, opts)

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
}

// Expire returns a cookie that instructs the browser to drop name.
func (m *Manager) Expire(name string) *http.Cookie {
	c := m.Build(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

// Get returns the value of the named request cookie.
// Returns ErrCookieNotFound when absent and ErrEmptyValue when present but empty.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrEmptyValue
	}
	return c.Value, nil
}
