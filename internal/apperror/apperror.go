// Package apperror carries the error taxonomy shared by services and the HTTP
// boundary. Services return *Error values classified by Kind; controllers map
// the Kind to a status code and never expose wrapped storage errors to
// callers. Match with errors.As or KindOf.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindConflict
	KindSessionExpired
	KindTransient
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, kept for logs, never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func InvalidInput(message string) *Error    { return New(KindInvalidInput, message) }
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }
func Unauthorized(message string) *Error    { return New(KindUnauthorized, message) }
func NotFound(message string) *Error        { return New(KindNotFound, message) }
func Conflict(message string) *Error        { return New(KindConflict, message) }
func SessionExpired(message string) *Error  { return New(KindSessionExpired, message) }

// Transient wraps a storage or infrastructure failure that is safe to retry
// as a whole operation.
func Transient(message string, err error) *Error {
	return Wrap(KindTransient, message, err)
}

// KindOf extracts the Kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// Message returns the caller-facing message of err. Foreign errors get a
// generic message so raw storage details never leak.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}

// HTTPStatus maps the taxonomy onto response codes.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindSessionExpired:
		return http.StatusGone
	case KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
