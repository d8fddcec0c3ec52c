package brokerage

import (
	"context"
	"errors"
	"fmt"

	"dematkyc/pkg/platform/sentinel"
)

// ErrorCategory is the normalized failure taxonomy for backend calls.
type ErrorCategory string

const (
	ErrorTimeout        ErrorCategory = "timeout"
	ErrorBadData        ErrorCategory = "bad_data"
	ErrorAuthentication ErrorCategory = "authentication"
	ErrorOutage         ErrorCategory = "outage"
	ErrorNotFound       ErrorCategory = "not_found"
	ErrorRejected       ErrorCategory = "rejected"
)

// sentinels maps each category onto the infrastructure fact services match on.
var sentinels = map[ErrorCategory]error{
	ErrorTimeout:        sentinel.ErrUnavailable,
	ErrorBadData:        sentinel.ErrBadResponse,
	ErrorAuthentication: sentinel.ErrTokenInvalid,
	ErrorOutage:         sentinel.ErrUnavailable,
	ErrorNotFound:       sentinel.ErrNotFound,
	ErrorRejected:       sentinel.ErrBadResponse,
}

// CallError wraps a failed backend call. errors.Is matches both the
// underlying cause and the category's sentinel.
type CallError struct {
	Category   ErrorCategory
	Endpoint   string
	StatusCode int
	Message    string
	Underlying error
}

func (e *CallError) Error() string {
	msg := fmt.Sprintf("brokerage %s [%s]", e.Endpoint, e.Category)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

func (e *CallError) Unwrap() []error {
	errs := []error{sentinels[e.Category]}
	if e.Underlying != nil {
		errs = append(errs, e.Underlying)
	}
	return errs
}

// CategoryOf extracts the category of a backend failure, or "" for errors
// that did not come from a call.
func CategoryOf(err error) ErrorCategory {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return ""
}

// breakerFailure reports whether err counts against the circuit breaker.
// Caller-side faults do not trip it.
func breakerFailure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch CategoryOf(err) {
	case ErrorAuthentication, ErrorNotFound, ErrorRejected:
		return false
	}
	return err != nil
}
