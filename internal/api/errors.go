package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports input rejected before any request was sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// TransportError wraps a failure to reach the backend or read its reply.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response.
type ServerError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend returned %d %s", e.Op, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Status, e.Message)
}

// Kind classifies an error for presentation.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindTransport
	KindServer
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// KindOf returns the taxonomy kind of err. Cancellation wins over the
// transport wrapper so abandoned requests can be dropped silently.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var se *ServerError
	if errors.As(err, &se) {
		return KindServer
	}
	var te *TransportError
	if errors.As(err, &te) {
		return KindTransport
	}
	return KindUnknown
}

// Detail renders a one-line explanation suitable for an alert body.
func Detail(err error) string {
	var ve *ValidationError
	var se *ServerError
	var te *TransportError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &se):
		if se.Message != "" {
			return fmt.Sprintf("The server responded %d: %s", se.Status, se.Message)
		}
		return fmt.Sprintf("The server responded %d %s", se.Status, http.StatusText(se.Status))
	case errors.As(err, &te):
		if errors.Is(te.Err, context.DeadlineExceeded) {
			return "The backend did not respond in time."
		}
		return "Could not reach the backend."
	case err != nil:
		return err.Error()
	}
	return ""
}
