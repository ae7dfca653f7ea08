// Package errors is the project error type: a code for machines, a message for people
//
// Import it as perr so it never shadows the standard library package.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for transports
// the numeric values go over the wire, append new codes at the end
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything we did not classify
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a panic caught by the recover middleware
	ErrorCodePanic
	// ErrorCodeUnavailable is a backend that is down or not configured, retry may help
	ErrorCodeUnavailable
	// ErrorCodeInvalidArgument is a well formed request naming something unusable
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is a request that fails its declared constraints
	ErrorCodeValidation
	// ErrorCodeNotFound is a missing row or document
	ErrorCodeNotFound
	// ErrorCodeDuplicateKey is a unique constraint violation
	ErrorCodeDuplicateKey
	// ErrorCodeDB is any other database failure
	ErrorCodeDB
)

var codeInfo = [...]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDuplicateKey:    {"duplicate_key", http.StatusConflict},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

// String names the code for logs
func (c ErrorCode) String() string {
	if int(c) < len(codeInfo) {
		return codeInfo[c].name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatus is the status a transport answers with, 500 for codes it does not know
func (c ErrorCode) HTTPStatus() int {
	if int(c) < len(codeInfo) {
		return codeInfo[c].status
	}
	return http.StatusInternalServerError
}

// ErrNotFound is the shared not found sentinel, match it with errors.Is
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a message, an optional field and the cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	orig  error
}

// Wire is the client facing part of an Error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig != nil:
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	default:
		return e.msg
	}
}

// Unwrap exposes the cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the request field at fault, empty when none
func (e *Error) Field() string { return e.field }

// WireFrom renders any error for clients: the cause is dropped and foreign
// errors become Unknown carrying their own text
func WireFrom(err error) Wire {
	e, ok := As(err)
	switch {
	case err == nil:
		return Wire{}
	case !ok:
		return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return Wire{Code: e.code, Message: e.msg, Field: e.field}
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to an http status
func HTTPStatus(err error) int { return CodeOf(err).HTTPStatus() }

// WithField returns a copy of err naming the offending field
// foreign errors are returned as is
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// New builds an error with a fixed message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap classifies orig under code
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// NotFoundf is Newf with ErrorCodeNotFound
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf is Newf with ErrorCodeInvalidArgument
func InvalidArgf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidArgument, format, a...)
}

// PanicErrf is Newf with ErrorCodePanic
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
