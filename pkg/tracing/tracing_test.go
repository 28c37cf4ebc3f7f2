package tracing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menengai/edge/pkg/tracing"
)

func TestDisabledWithoutEndpoint(t *testing.T) {
	t.Parallel()

	p, err := tracing.Setup(context.Background(), tracing.Config{ServiceName: "edge-gateway"})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
	wrapped := p.Middleware("edge")(h)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	assert.Same(t, http.DefaultTransport, p.Transport(nil))
}

func TestNilProviderIsDisabled(t *testing.T) {
	t.Parallel()

	var p *tracing.Provider
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}
