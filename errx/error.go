package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// DatabaseErrorMessage describes PostgreSQL related failures.
	DatabaseErrorMessage = "database operation failed"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
)

// Error wraps an underlying error with an HTTP status and safe message.
type Error struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, status int, message string) *Error {
	return &Error{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// BadRequest marks err as a caller mistake.
func BadRequest(err error, message string) *Error {
	return New(err, http.StatusBadRequest, message)
}

// NotFound marks err as a missing resource.
func NotFound(err error, message string) *Error {
	return New(err, http.StatusNotFound, message)
}

// WrapDatabase wraps a database error with a consistent status code and message.
func WrapDatabase(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusServiceUnavailable, DatabaseErrorMessage)
}

// StatusOf returns the HTTP status carried by err, or 500 when it carries none.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err, or SystemErrorMessage.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return SystemErrorMessage
}
