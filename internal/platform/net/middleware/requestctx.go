package middleware

import (
	"net"
	"net/http"

	"eventdir/internal/platform/logger"
	pnet "eventdir/internal/platform/net"
)

// RequestContext copies the chi request id and client ip onto the logger context
// mount it after RequestID and RealIP so logger.C carries both
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
