// Package httpkit is the handler surface modules build routes with, so they
// never import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "eventdir/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Handler is a plain handler func
	Handler = phttp.Handler
	// Response is what return style handlers produce
	Response = phttp.Response
)

// Error lets err choose the status and fill the envelope
func Error(err error) Response { return phttp.Error(err) }

// Blob is a 200 written outside the envelope
func Blob(contentType string, body []byte) Response { return phttp.Blob(contentType, body) }

// ParamID reads a positive integer path parameter, anything else is an invalid argument
func ParamID(r *http.Request, name string) (int, error) { return phttp.ParamID(r, name) }

// Call adapts (value, error) handlers; a Response value is written as is,
// anything else is enveloped as data
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
