// Package middleware provides the HTTP middleware chain: request IDs,
// request-scoped time, and client metadata. Values land in the context via
// pkg/requestcontext so services stay free of net/http.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"rolesync/pkg/requestcontext"
)

// RequestID assigns a correlation ID to every request. An inbound
// X-Request-ID header is honored so upstream proxies can trace calls.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx := requestcontext.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
