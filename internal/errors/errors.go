// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// precondition violations, cross-strategy mismatches) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All composite error types implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors

import (
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates an invalid problem instance (bad dimensions, nil input).
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
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

// DimensionError reports a matrix multiplication precondition violation:
// the inner dimensions of the two operands do not agree. The strategies
// signal this by returning a nil result together with this error; they
// never panic on malformed input.
type DimensionError struct {
	// Op names the operation that was attempted (e.g., "multiply").
	Op string
	// LeftRows and LeftCols are the dimensions of the left operand.
	LeftRows, LeftCols int
	// RightRows and RightCols are the dimensions of the right operand.
	RightRows, RightCols int
}

// Error returns the error message for a DimensionError.
func (e DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: left is %dx%d, right is %dx%d",
		e.Op, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols)
}

// InvalidInputError reports a precondition violation other than a dimension
// mismatch, such as a nil operand or an out-of-domain argument.
type InvalidInputError struct {
	// Message explains which precondition was violated.
	Message string
}

// Error returns the error message for an InvalidInputError.
func (e InvalidInputError) Error() string { return e.Message }

// NewInvalidInputError creates a new InvalidInputError with a formatted message.
func NewInvalidInputError(format string, a ...any) error {
	return InvalidInputError{Message: fmt.Sprintf(format, a...)}
}

// MismatchError signals that two strategies of the same domain produced
// different results for identical inputs. This is a correctness fault in one
// of the strategies, not a runtime condition to recover from: the comparison
// harness surfaces it distinctly from performance results and the process
// exits with ExitErrorMismatch.
type MismatchError struct {
	// Domain is the comparison domain ("matrix", "search", "math").
	Domain string
	// Baseline is the name of the reference strategy.
	Baseline string
	// Offender is the name of the disagreeing strategy.
	Offender string
	// Expected and Got describe the two conflicting outputs.
	Expected, Got string
}

// Error returns the error message for a MismatchError.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: strategy %q disagrees with baseline %q: expected %s, got %s",
		e.Domain, e.Offender, e.Baseline, e.Expected, e.Got)
}

// RunError encapsulates a benchmark run error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a comparison run.
type RunError struct {
	// Cause is the underlying error that triggered this run error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e RunError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e RunError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, a...)
	return fmt.Errorf("%s: %w", msg, err)
}
