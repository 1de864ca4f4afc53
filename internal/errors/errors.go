package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates a prime set mismatch between schemes.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the program was interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// an unreadable configuration file. It indicates that the search cannot start.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// SearchError wraps a failure reported by a prime search run together with
// the name of the division scheme that produced it.
type SearchError struct {
	// Scheme is the division scheme of the failed run.
	Scheme string
	// Cause is the underlying error.
	Cause error
}

// Error returns the scheme-qualified message of the underlying cause.
func (e SearchError) Error() string {
	return fmt.Sprintf("%s search: %v", e.Scheme, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e SearchError) Unwrap() error { return e.Cause }

// MismatchError reports that two division schemes produced different prime
// sets for the same bound.
type MismatchError struct {
	Reference string
	Other     string
	// Index is the first position at which the sorted sets differ.
	Index int
}

// Error returns a formatted description of the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("prime sets of %q and %q differ at index %d", e.Reference, e.Other, e.Index)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsConfigError reports whether err is (or wraps) a ConfigError or a
// ValidationError.
func IsConfigError(err error) bool {
	var cfgErr ConfigError
	var valErr ValidationError
	return errors.As(err, &cfgErr) || errors.As(err, &valErr)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	var mismatch MismatchError
	switch {
	case err == nil:
		return ExitSuccess
	case IsConfigError(err):
		return ExitErrorConfig
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HandleSearchError writes a one-line description of err to out and returns
// the matching exit code. A nil error writes nothing and returns ExitSuccess.
func HandleSearchError(err error, out io.Writer) int {
	code := ExitCodeFor(err)
	if err == nil {
		return code
	}
	switch code {
	case ExitErrorConfig:
		fmt.Fprintf(out, "Configuration error: %v\n", err)
	case ExitErrorMismatch:
		fmt.Fprintf(out, "Result mismatch: %v\n", err)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "Interrupted: %v\n", err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return code
}
