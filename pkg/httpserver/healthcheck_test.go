package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/menengai/edge/pkg/httpserver"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := httpserver.Check{Name: "ok", Func: func(context.Context) error { return nil }}

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, time.Second, ok)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()

		pg := httpserver.Check{Name: "postgres", Func: func(context.Context) error { return errors.New("down") }}

		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, time.Second, ok, pg)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY: postgres", rec.Body.String())
	})

	t.Run("check bounded by timeout", func(t *testing.T) {
		t.Parallel()

		slow := httpserver.Check{Name: "slow", Func: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}}

		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, 20*time.Millisecond, slow)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
