package httpkit

import (
	"net/http"
	"net/http/httptest"

	phttp "eventdir/internal/platform/net/http"
)

// recRouter records what gets mounted on it, subrouters share the record
type recRouter struct {
	prefixes []string
	mw       int
	gets     map[string]phttp.Handler
}

func newRecRouter() *recRouter { return &recRouter{gets: map[string]phttp.Handler{}} }

func (f *recRouter) Get(path string, h phttp.Handler)          { f.gets[path] = h }
func (f *recRouter) Handle(string, http.Handler)               {}
func (f *recRouter) Use(mw ...func(http.Handler) http.Handler) { f.mw += len(mw) }
func (f *recRouter) Mux() http.Handler                         { return http.NotFoundHandler() }
func (f *recRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

// hit runs a recorded GET handler against target
func (f *recRouter) hit(path, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.gets[path](rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}
