// Package http provides http transport for locations
package http

import (
	stdhttp "net/http"

	"eventdir/internal/modkit/httpkit"
	svc "eventdir/internal/services/api/locations/service"
)

// Register mounts locations endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// GET /locations
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// GET /locations/{id}, 422 for a bad id and 404 when missing
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}
