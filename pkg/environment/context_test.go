package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menengai/edge/pkg/environment"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("context with mode", func(t *testing.T) {
		t.Parallel()

		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
	})

	t.Run("context without mode", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, environment.Mode(""), environment.FromContext(context.Background()))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extractor := environment.LoggerExtractor()

	attr, ok := extractor(environment.WithContext(context.Background(), environment.Development))
	assert.True(t, ok)
	assert.Equal(t, "mode", attr.Key)
	assert.Equal(t, "development", attr.Value.String())

	_, ok = extractor(context.Background())
	assert.False(t, ok)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Mode
	handler := environment.Middleware(environment.Development)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, environment.Development, got)
}
