package httpkit

import (
	"net/http"

	phttp "eventdir/internal/platform/net/http"
)

// Get registers a no-input handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetQuery mounts a GET handler whose query string is bound and validated into T
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.GetQuery(r, path, h)
}

// GetRaw mounts a GET handler that builds its own Response, used for non JSON feeds
func GetRaw(r Router, path string, h func(*http.Request) Response) {
	phttp.GetRaw(r, path, h)
}
