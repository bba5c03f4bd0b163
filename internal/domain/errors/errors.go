// Package errors defines the application error taxonomy. Every error the
// core raises maps to an HTTP status through the AppError interface, so the
// delivery layer never inspects database or library errors directly.
package errors

import (
	"net/http"

	"blog/internal/errors"
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
	}
}

// Predefined error types
var (
	// Validation errors (caught before core logic runs)
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Sign-up conflicts (unique constraint surfaced from storage)
	ErrEmailOrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"email or username already exists",
		"",
	)

	// Sign-in failures. The two messages are deliberately distinguishable;
	// the existence check always runs before the password comparison.
	ErrUserDoesNotExist = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"user does not exist",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"password does not match",
		"",
	)

	// Guard failures
	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authorization token is missing or malformed",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid or expired token",
		"",
	)

	// Comment ownership is checked by email claim, not owner reference.
	ErrCommentNotOwned = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"comment does not belong to you",
		"",
	)

	// Not-found errors. For posts, absent and not-owned are the same error
	// so the existence of other users' posts never leaks.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"user not found",
		"",
	)

	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"post not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"comment not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
