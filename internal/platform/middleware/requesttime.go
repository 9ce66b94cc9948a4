package middleware

import (
	"net/http"
	"time"

	"rolesync/pkg/requestcontext"
)

// RequestTime captures the current time at the start of the request so all
// operations within one request observe the same "now". The store adapter
// stamps last_modified from this value.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
