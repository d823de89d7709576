package errors

import (
	"net/http"

	"users/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
// Details are appended so guard reasons survive plain Error() rendering.
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so derived
// errors from WithDetails or WithCause still match the catalogue values.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
}

// Unwrap exposes the underlying cause, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		cause:     e.cause,
	}
}

// WithCause attaches the underlying error; its text becomes the details.
func (e *BaseError) WithCause(cause error) *BaseError {
	derived := e.WithDetails(e.details)
	derived.cause = cause
	if cause != nil && derived.details == "" {
		derived.details = cause.Error()
	}

	return derived
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrArgumentMissing = NewBaseError(
		http.StatusBadRequest,
		"ARGUMENT_MISSING",
		"required value is missing",
		"",
	)

	// User name errors
	ErrUserNameTooShort = NewBaseError(
		http.StatusBadRequest,
		"USER_NAME_TOO_SHORT",
		"user name is too short",
		"",
	)

	ErrUserNameTooLong = NewBaseError(
		http.StatusBadRequest,
		"USER_NAME_TOO_LONG",
		"user name is too long",
		"",
	)

	ErrInvalidUserID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"user id is not a valid UUID",
		"",
	)

	// Credential errors
	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"password-too-short",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"password-too-long",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password hashing failed",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"password does not match",
		"",
	)

	// Programming errors
	ErrInvalidResultAccess = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_RESULT_ACCESS",
		"value of a failed result accessed",
		"",
	)
)
