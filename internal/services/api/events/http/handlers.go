// Package http provides http transport for events
package http

import (
	stdhttp "net/http"

	"eventdir/internal/modkit/httpkit"
	"eventdir/internal/services/api/events/domain"
	svc "eventdir/internal/services/api/events/service"
)

// Register mounts events endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery(r, "/", h.list)
	httpkit.Get(r, "/locations", h.locations)
	httpkit.Get(r, "/location/{locationID}", h.byLocation)
	httpkit.GetRaw(r, "/calendar.ics", h.calendar)
}

type handlers struct{ svc svc.Service }

// GET /events?q=&location=&when=&from=&to=
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// GET /events/location/{locationID}
// an unknown location is an empty list, not a 404
func (h *handlers) byLocation(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamID(r, "locationID")
	if err != nil {
		return nil, err
	}
	return h.svc.ByLocation(r.Context(), id)
}

// GET /events/locations
func (h *handlers) locations(r *stdhttp.Request) (any, error) {
	return h.svc.LocationNames(r.Context())
}

// GET /events/calendar.ics
func (h *handlers) calendar(r *stdhttp.Request) httpkit.Response {
	body, err := h.svc.Calendar(r.Context())
	if err != nil {
		return httpkit.Error(err)
	}
	resp := httpkit.Blob("text/calendar; charset=utf-8", body)
	resp.Header = stdhttp.Header{}
	resp.Header.Set("Content-Disposition", `inline; filename="events.ics"`)
	return resp
}
