package http

import (
	"net/http"
	"strconv"
	"strings"

	perr "eventdir/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Param returns the named path parameter, empty when the route has none
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// ParamID parses a positive integer path parameter
func ParamID(r *http.Request, name string) (int, error) {
	raw := Param(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, perr.WithField(perr.InvalidArgf("%s must be a positive integer, got %q", name, raw), name)
	}
	return id, nil
}
