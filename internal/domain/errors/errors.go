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

// Predefined error types.
//
// Every protocol failure maps to HTTP 400 except a missing or invalid
// session token, which is 401. Messages stay deliberately generic:
// InvalidCredentials is shared by unknown-email and wrong-password so the
// two are indistinguishable, and the code/token errors never reveal
// whether the value was absent or merely expired.
var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"All fields are required",
		"",
	)

	// ErrEmailAlreadyExists is returned when signing up with a registered email.
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	// ErrInvalidVerificationCode covers both unknown and expired codes.
	ErrInvalidVerificationCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OR_EXPIRED_CODE",
		"Invalid or expired verification code",
		"",
	)

	// ErrInvalidResetToken covers both unknown and expired reset tokens.
	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OR_EXPIRED_TOKEN",
		"Invalid or expired reset token",
		"",
	)

	// ErrInvalidCredentials is shared by unknown email and wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// ErrUnauthorized is returned when the session token is missing or invalid.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized - invalid or missing token",
		"",
	)

	// ErrUserNotFound is returned when an authenticated identity or a
	// forgot-password email has no backing record.
	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// ErrPasswordHashFailed signals a hashing failure, never the input itself.
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// ErrNotificationFailed is returned when the notifier cannot deliver.
	// State committed before the send stays committed.
	ErrNotificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_FAILED",
		"Failed to send notification email",
		"",
	)

	// ErrInternalError is the generic fallback for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
