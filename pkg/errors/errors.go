package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a registration was not found
	ErrNotFound = errors.New("registration not found")

	// ErrConflict indicates an active registration already exists
	ErrConflict = errors.New("registration conflict")

	// ErrAuth indicates the backing store rejected our credentials
	ErrAuth = errors.New("store authentication failed")

	// ErrTransient indicates the backing store is rate-limited or out of
	// resources and the caller should retry later
	ErrTransient = errors.New("store temporarily unavailable")

	// ErrStore indicates a generic backing store failure
	ErrStore = errors.New("store error")
)

// Wrap wraps an error with a message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if an error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsTransient checks if an error is a retryable store error
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsAuth checks if an error is a store credential error
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}
