package errors

import (
	"net/http"

	"gatekeeper/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// ErrInvalidInput covers malformed or missing request fields.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request is malformed or missing required fields",
	)

	// ErrInvalidCredentials never says which of username or password was wrong.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
	)

	// ErrUnauthorized means the access token could not be trusted.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Access token is invalid",
	)

	// ErrForbidden means the identity is fine but the session is not.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Refresh token does not match an active session",
	)

	// ErrInsufficientRole is returned by role-gated routes.
	ErrInsufficientRole = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_ROLE",
		"Permission denied",
	)

	// ErrInternalRandomness is fatal for the operation: the secure RNG failed.
	ErrInternalRandomness = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_RANDOMNESS_FAILURE",
		"Internal server error, please try again later",
	)

	// ErrInternalError is the generic fallback.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
	)
)
