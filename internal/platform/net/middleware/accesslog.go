package middleware

import (
	"net/http"
	"time"

	"eventdir/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions tunes AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs requests at or over it at warn; zero never does
	Slow time.Duration
}

// AccessLogZerolog writes one line per request through the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			l := logger.C(r.Context())
			e := l.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				e = l.Warn()
			}
			e.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
