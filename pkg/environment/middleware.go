package environment

import "net/http"

// Middleware attaches the given deployment mode to all request contexts.
func Middleware(mode Mode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), mode)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
