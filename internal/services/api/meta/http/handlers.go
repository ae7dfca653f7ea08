// Package http serves the /meta probes: liveness, readiness against the
// configured read model, build info and uptime
package http

import (
	"context"
	"net/http"
	"time"

	"eventdir/internal/core/version"
	"eventdir/internal/modkit/httpkit"
	"eventdir/internal/platform/store"
	ptime "eventdir/internal/platform/time"
)

// ReadyBudget bounds the whole readiness run
const ReadyBudget = 2 * time.Second

// check outcomes
const (
	CheckOK      = "ok"
	CheckFail    = "fail"
	CheckSkipped = "skipped"
)

// Deps are the handler dependencies
// PG and Files are whatever the store opened, nil when that source is off
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       ptime.Clock
	PG          any
	Files       any
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", d.health)
	httpkit.Get(r, "/ready", d.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", d.service)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"eventdir-api"`
	Started string `json:"started" example:"2025-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2025-10-01T13:05:00Z"`
}

// ReadyCheck is one source probe
type ReadyCheck struct {
	Name   string `json:"name"            example:"files"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"open seed/events.json: file does not exist"`
}

// ReadyResponse carries the verdict; the http status is 200 either way
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-10-01T13:05:00Z"`
}

// ServiceResponse reports process uptime in whole seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"eventdir-api"`
	Started string `json:"started" example:"2025-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (d Deps) health(*http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: d.ServiceName,
		Started: stamp(d.StartedAt),
		Now:     stamp(d.Clock.Now()),
	}, nil
}

func probe(ctx context.Context, name string, src any) ReadyCheck {
	p, ok := src.(store.Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: CheckSkipped}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: CheckFail, Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: CheckOK}
}

// Verdict is ok when at least one check passed and none failed
func Verdict(checks []ReadyCheck) string {
	passed := false
	for _, c := range checks {
		switch c.Status {
		case CheckFail:
			return CheckFail
		case CheckOK:
			passed = true
		}
	}
	if !passed {
		return CheckFail
	}
	return CheckOK
}

func (d Deps) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), ReadyBudget)
	defer cancel()

	checks := []ReadyCheck{probe(ctx, "pg", d.PG), probe(ctx, "files", d.Files)}
	return ReadyResponse{Status: Verdict(checks), Checks: checks, Now: stamp(d.Clock.Now())}, nil
}

func (d Deps) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    d.ServiceName,
		Started: stamp(d.StartedAt),
		Uptime:  int64(d.Clock.Now().Sub(d.StartedAt) / time.Second),
	}, nil
}
