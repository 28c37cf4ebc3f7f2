package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menengai/edge/pkg/cookie"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		c := cookie.New().Build("session", "v")
		assert.Equal(t, "session", c.Name)
		assert.Equal(t, "v", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.Secure)
	})

	t.Run("per-call options override defaults without mutating them", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithDomain(".menengai.cloud"), cookie.WithSecure(true))

		c := m.Build("a", "1", cookie.WithMaxAge(60), cookie.WithHTTPOnly(false))
		assert.Equal(t, 60, c.MaxAge)
		assert.False(t, c.HttpOnly)
		assert.Equal(t, ".menengai.cloud", c.Domain)
		assert.True(t, c.Secure)

		again := m.Build("b", "2")
		assert.Equal(t, 0, again.MaxAge)
		assert.True(t, again.HttpOnly)
	})
}

func TestExpire(t *testing.T) {
	t.Parallel()

	c := cookie.New(cookie.WithPath("/app")).Expire("session")
	assert.Equal(t, -1, c.MaxAge)
	assert.Empty(t, c.Value)
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, int64(0), c.Expires.Unix())
}

func TestGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})

		v, err := m.Get(req, "session")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "session")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: ""})

		_, err := m.Get(req, "session")
		assert.ErrorIs(t, err, cookie.ErrEmptyValue)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.DefaultConfig()
		cfg.Domain = ".menengai.cloud"

		m, err := cookie.NewFromConfig(cfg)
		require.NoError(t, err)

		c := m.Build("s", "v")
		assert.Equal(t, ".menengai.cloud", c.Domain)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("zero config", func(t *testing.T) {
		t.Parallel()

		m, err := cookie.NewFromConfig(cookie.Config{})
		require.NoError(t, err)

		c := m.Build("s", "v")
		assert.False(t, c.Secure)
		assert.False(t, c.HttpOnly)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("same site modes", func(t *testing.T) {
		t.Parallel()

		m, err := cookie.NewFromConfig(cookie.Config{SameSite: "Strict"})
		require.NoError(t, err)
		assert.Equal(t, http.SameSiteStrictMode, m.Build("s", "v").SameSite)

		m, err = cookie.NewFromConfig(cookie.Config{SameSite: "none", Secure: true})
		require.NoError(t, err)
		assert.Equal(t, http.SameSiteNoneMode, m.Build("s", "v").SameSite)

		_, err = cookie.NewFromConfig(cookie.Config{SameSite: "2"})
		assert.ErrorIs(t, err, cookie.ErrInvalidSameSite)
	})
}
