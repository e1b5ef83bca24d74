// Package apperror defines the domain error taxonomy. Handlers translate
// these into HTTP responses; nothing in this package is retried.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfRequest: friendship or transfer target equals the requester.
	ErrSelfRequest = errors.New("self request")
	// ErrDuplicateRequest: an edge already exists in the same direction.
	ErrDuplicateRequest = errors.New("duplicate request")
	// ErrForbidden: actor lacks rights over the target record.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidState: transition attempted from a non-pending state.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound: record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrGeocodingUnavailable is logged, never surfaced to callers.
	ErrGeocodingUnavailable = errors.New("geocoding unavailable")
)

// AppError pairs a sentinel with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func SelfRequest(message string) *AppError {
	return &AppError{Err: ErrSelfRequest, Message: message}
}

func DuplicateRequest(message string) *AppError {
	return &AppError{Err: ErrDuplicateRequest, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func InvalidState(message string) *AppError {
	return &AppError{Err: ErrInvalidState, Message: message}
}

func NotFound(resource string, id any) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found with id %v", resource, id)}
}
