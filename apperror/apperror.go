// Package apperror defines the application's error taxonomy. Every error a
// service raises is an *AppError carrying a type that maps to exactly one HTTP
// status code, so API consumers can branch on status rather than message text.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unclassified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents a failure talking to the database.
	DatabaseError
	// AuthError represents an authentication failure (missing or invalid token).
	AuthError
	// UnauthorizedError represents an authorization failure: the caller is
	// authenticated but is not allowed to act on the resource.
	UnauthorizedError
	// NotFoundError represents a missing resource.
	NotFoundError
	// ValidationError represents failed input validation.
	ValidationError
	// BadRequestError represents otherwise malformed input.
	BadRequestError
	// InternalError represents an unexpected server-side failure.
	InternalError
	// ConflictError represents a state conflict, e.g. email already registered.
	ConflictError
)

// AppError is the application's error type. It optionally wraps an underlying
// error for debugging; only Message is ever shown to API clients.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error type.
// AuthError (not authenticated) maps to 401 while UnauthorizedError
// (authenticated but not permitted) maps to 403.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case UnauthorizedError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case DatabaseError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError is the generic constructor; the typed constructors below are
// preferred at call sites.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlying,
	}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewAuthError creates an AuthError (authentication failure, 401).
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewUnauthorizedError creates an UnauthorizedError (authorization failure, 403).
func NewUnauthorizedError(message string, underlying error) *AppError {
	return NewAppError(UnauthorizedError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return NewAppError(BadRequestError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return NewAppError(ConflictError, message, underlying)
}

// ErrorResponse is the JSON body returned to clients for any error.
type ErrorResponse struct {
	Error string `json:"error" example:"A description of the error"`
}

// ToResponse converts the error to its client-facing representation.
// The wrapped underlying error is never exposed.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError converts a generic error to an *AppError if it is one.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool { return isType(err, AuthError) }

// IsUnauthorized reports whether err is an UnauthorizedError.
func IsUnauthorized(err error) bool { return isType(err, UnauthorizedError) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return isType(err, ValidationError) }

// IsBadRequest reports whether err is a BadRequestError.
func IsBadRequest(err error) bool { return isType(err, BadRequestError) }

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool { return isType(err, ConflictError) }
