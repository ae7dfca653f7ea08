// Package http is the transport seam: router, server and the response envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "eventdir/internal/platform/errors"
	pnet "eventdir/internal/platform/net"
)

// Envelope wraps every JSON body the API writes
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return style handlers hand back
// Body is enveloped, unless Raw is set in which case Raw goes out verbatim as ContentType
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header

	Raw         []byte
	ContentType string
}

// Handle adapts a Response returning func to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}

	switch {
	case status == stdhttp.StatusNoContent:
		w.WriteHeader(status)
	case resp.Raw != nil:
		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(status)
		_, _ = w.Write(resp.Raw)
	default:
		env := Envelope{RequestID: pnet.RequestID(r.Context())}
		if err, ok := resp.Body.(error); ok && err != nil {
			// the error decides the status
			status = perr.HTTPStatus(err)
			wire := perr.WireFrom(err)
			env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
		} else {
			env.Data = resp.Body
		}
		env.StatusCode, env.Status = status, stdhttp.StatusText(status)
		JSON(w, status, env)
	}
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent is a bare 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error lets err pick the status and fill the envelope
func Error(err error) Response { return Response{Body: err} }

// Blob is a 200 written outside the envelope, calendars and other non JSON bodies
func Blob(contentType string, body []byte) Response {
	if body == nil {
		body = []byte{}
	}
	return Response{Status: stdhttp.StatusOK, Raw: body, ContentType: contentType}
}
