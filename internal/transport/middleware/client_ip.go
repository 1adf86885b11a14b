package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/filmlist-backend/pkg/ctxutil"
)

// ClientIP resolves the caller address and stores it in the context. When
// trustProxy is set, the first X-Forwarded-For hop wins over RemoteAddr.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r.RemoteAddr)
			if trustProxy {
				if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
					first, _, _ := strings.Cut(fwd, ",")
					if first = strings.TrimSpace(first); first != "" {
						ip = first
					}
				}
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func clientIP(r *http.Request) string {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip
	}
	return remoteHost(r.RemoteAddr)
}
