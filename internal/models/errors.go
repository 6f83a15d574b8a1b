package models

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a stable machine-readable error code for the API
type ErrorCode string

const (
	// General errors
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest ErrorCode = "INVALID_BODY"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// Registration lifecycle errors
	ErrCodeDuplicateEmail    ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	ErrCodeMissingIdentifier ErrorCode = "MISSING_IDENTIFIER"

	// Query parameter errors
	ErrCodeInvalidLimit  ErrorCode = "INVALID_LIMIT"
	ErrCodeInvalidOffset ErrorCode = "INVALID_OFFSET"

	// Auth errors
	ErrCodeInvalidAdminKey ErrorCode = "INVALID_ADMIN_KEY"
	ErrCodeAuth            ErrorCode = "AUTH_ERROR"

	// Backing store errors
	ErrCodeRateLimit ErrorCode = "RATE_LIMIT"
)

// AppError represents a structured application error
type AppError struct {
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Internal   error       `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error for error chain support
func (e *AppError) Unwrap() error {
	return e.Internal
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Common error constructors

func NewValidationError(errors []string) *AppError {
	return &AppError{
		Code:       ErrCodeValidation,
		Message:    "Validation failed",
		Details:    errors,
		StatusCode: http.StatusBadRequest,
	}
}

func NewDuplicateEmailError(existingStatus string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateEmail,
		Message: "Email already registered",
		Details: map[string]string{
			"status":  existingStatus,
			"message": fmt.Sprintf("This email is already registered with status: %s", existingStatus),
		},
		StatusCode: http.StatusConflict,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:       ErrCodeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewInvalidStatusError(status string) *AppError {
	return &AppError{
		Code:       ErrCodeInvalidStatus,
		Message:    "Invalid status",
		Details:    fmt.Sprintf("Status must be either %q or %q, got %q", StatusApproved, StatusRejected, status),
		StatusCode: http.StatusBadRequest,
	}
}

func NewMissingIdentifierError() *AppError {
	return &AppError{
		Code:       ErrCodeMissingIdentifier,
		Message:    "Either id or email is required",
		StatusCode: http.StatusBadRequest,
	}
}

func NewInvalidLimitError() *AppError {
	return &AppError{
		Code:       ErrCodeInvalidLimit,
		Message:    "Invalid limit parameter",
		Details:    "Limit must be between 1 and 100",
		StatusCode: http.StatusBadRequest,
	}
}

func NewInvalidOffsetError() *AppError {
	return &AppError{
		Code:       ErrCodeInvalidOffset,
		Message:    "Invalid offset parameter",
		Details:    "Offset must be non-negative",
		StatusCode: http.StatusBadRequest,
	}
}

func NewUnauthorizedError() *AppError {
	return &AppError{
		Code:       ErrCodeInvalidAdminKey,
		Message:    "Unauthorized",
		Details:    "Valid admin key required in X-Admin-Key header",
		StatusCode: http.StatusUnauthorized,
	}
}

func NewAuthError(err error) *AppError {
	return &AppError{
		Code:       ErrCodeAuth,
		Message:    "Service configuration error",
		StatusCode: http.StatusInternalServerError,
		Internal:   err,
	}
}

func NewRateLimitError(err error) *AppError {
	return &AppError{
		Code:       ErrCodeRateLimit,
		Message:    "Service temporarily unavailable",
		StatusCode: http.StatusTooManyRequests,
		Internal:   err,
	}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:       ErrCodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Internal:   err,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:       ErrCodeBadRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
