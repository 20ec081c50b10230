// Package domain defines core types, interfaces, and errors for the service platform.
package domain

import "fmt"

// NotFoundError indicates a resource was not found. It is also returned when
// the caller lacks access to a resource that exists, so responses never reveal
// whether a given ID is real.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UnauthorizedError indicates a missing or invalid credential.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a conflict (e.g., duplicate resource).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InvalidReferenceError indicates a payload is missing a required entity
// reference, or names one that cannot be used.
type InvalidReferenceError struct {
	Message string
}

func (e *InvalidReferenceError) Error() string { return e.Message }

// InvalidTimeRangeError indicates an exit time that is not strictly after the
// entry time.
type InvalidTimeRangeError struct {
	Message string
}

func (e *InvalidTimeRangeError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnauthorized creates an UnauthorizedError with a formatted message.
func ErrUnauthorized(format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidReference creates an InvalidReferenceError with a formatted message.
func ErrInvalidReference(format string, args ...interface{}) *InvalidReferenceError {
	return &InvalidReferenceError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidTimeRange creates an InvalidTimeRangeError with a formatted message.
func ErrInvalidTimeRange(format string, args ...interface{}) *InvalidTimeRangeError {
	return &InvalidTimeRangeError{Message: fmt.Sprintf(format, args...)}
}
