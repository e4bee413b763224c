// Package apperror defines the closed set of errors the API surfaces and
// their HTTP status mapping.
package apperror

import (
	"errors"
	"net/http"
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

// Conflict reports a duplicate resource. Surfaced as 400, matching the
// register endpoint contract.
func Conflict(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message}
}

// NotFound covers both absent and not-owned resources so callers cannot
// probe for other users' records.
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

// Upstream wraps an AI provider failure. The upstream error text is kept
// in the response body.
func Upstream(message string, err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message, Err: err}
}

// Write maps err onto the response. Errors outside the taxonomy become a
// plain 500.
func Write(w http.ResponseWriter, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		http.Error(w, appErr.Error(), appErr.Code)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
