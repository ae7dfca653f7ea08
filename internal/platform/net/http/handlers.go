package http

import (
	"net/http"

	"eventdir/internal/platform/net/http/bind"
)

// QueryHandler binds and validates the query string into T, then envelopes fn's result
// fn never runs for a request that fails binding
func QueryHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// GetQuery mounts a QueryHandler for GET path
func GetQuery[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Get(path, QueryHandler(fn))
}

// GetRaw mounts a GET handler that builds its own Response
func GetRaw(r Router, path string, fn func(*http.Request) Response) {
	r.Get(path, Handle(fn))
}
