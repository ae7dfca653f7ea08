// Package metrics owns the prometheus registry and the collectors the api exports
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every collector name
const Namespace = "eventdir"

// status label values for EventStatus
const (
	StatusPast      = "past"
	StatusUpcoming  = "upcoming"
	StatusMalformed = "malformed"
)

// Registry bundles a private prometheus registry with the api collectors
// a nil *Registry is valid and records nothing
type Registry struct {
	reg *prometheus.Registry

	eventStatus  *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New builds a registry with go and process collectors attached
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Registry{
		reg: reg,
		eventStatus: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "event_status_total",
			Help:      "Events classified by temporal status",
		}, []string{"status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Gatherer exposes the underlying registry for tests and custom exporters
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

// Handler serves the registry in the prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{})
}

// ObserveStatus counts one classified event
func (r *Registry) ObserveStatus(past, malformed bool) {
	if r == nil {
		return
	}
	label := StatusUpcoming
	switch {
	case malformed:
		label = StatusMalformed
	case past:
		label = StatusPast
	}
	r.eventStatus.WithLabelValues(label).Inc()
}

// Middleware records request latency labelled by the matched chi route pattern
// unmatched requests share the "unmatched" route label to keep cardinality bounded
func (r *Registry) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if r == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, req)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := "unmatched"
			if rc := chi.RouteContext(req.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			r.httpDuration.
				WithLabelValues(req.Method, route, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
