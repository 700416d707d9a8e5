// Package apperr defines the error kinds the service distinguishes when
// mapping failures to API responses: validation problems, duplicate
// conflicts, and missing resources. Anything else is treated as a server
// error by the transport layer.
package apperr

import "errors"

// ValidationError indicates malformed or semantically inconsistent input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates the request duplicates existing state.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError indicates the target resource does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Validation builds a ValidationError.
func Validation(message string) error { return &ValidationError{Message: message} }

// Conflict builds a ConflictError.
func Conflict(message string) error { return &ConflictError{Message: message} }

// NotFound builds a NotFoundError.
func NotFound(message string) error { return &NotFoundError{Message: message} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
