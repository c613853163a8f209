// Package errs defines the error type rendered to API clients.
//
// Handlers and services return *HTTPError when a failure has a known
// response status. Anything else is treated as an internal error by the
// renderer in httpx.
package errs

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a response status.
//
// Violations is set for schema failures and is rendered in place of
// Message. Cause is kept for errors.Is/As and never sent to clients.
type HTTPError struct {
	Status     int
	Message    string
	Violations []string
	cause      error
}

func (e *HTTPError) Error() string {
	if len(e.Violations) > 0 {
		return e.Violations[0]
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// NewNotFoundError returns a 404 error wrapping cause.
func NewNotFoundError(message string, cause error) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message, cause: cause}
}

// NewValidationError returns a 400 error carrying schema violations in order.
func NewValidationError(violations []string) *HTTPError {
	return &HTTPError{
		Status:     http.StatusBadRequest,
		Message:    "validation failed",
		Violations: violations,
	}
}

func NewBadRequestError(message string, cause error) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, cause: cause}
}

func NewPayloadTooLargeError(cause error) *HTTPError {
	return &HTTPError{Status: http.StatusRequestEntityTooLarge, Message: "request body too large", cause: cause}
}

// As extracts the first *HTTPError in err's chain.
func As(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
