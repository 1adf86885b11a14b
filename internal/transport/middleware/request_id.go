package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/filmlist-backend/pkg/ctxutil"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses an incoming X-Request-Id or generates a UUID.
// Overlong incoming ids are replaced.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
