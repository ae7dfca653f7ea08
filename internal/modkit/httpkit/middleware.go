package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"eventdir/internal/platform/metrics"
	"eventdir/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack from config
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	Metrics     *metrics.Registry
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		o.Metrics.Middleware(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
