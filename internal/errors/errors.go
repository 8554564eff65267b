// Package errors provides sentinel errors, structured error details and exit
// codes for the create-vite CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewFilesystemError creates a filesystem error for the given path.
// The original error is kept in the context so it shows up in the report.
// Permission failures also match ErrPermission.
func NewFilesystemError(op, path string, err error) error {
	detail := &DetailError{
		Type:     "filesystem operation failed",
		Message:  fmt.Sprintf("%s: %v", op, err),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrFilesystem, err),
	}
	if errors.Is(err, fs.ErrPermission) {
		detail.Cause = fmt.Errorf("%w: %w: %w", ErrFilesystem, ErrPermission, err)
		detail.Hint = "Check that you own " + path + " or pick another directory."
	}
	return detail
}

// NewSubprocessError creates a subprocess error for a failed command line.
func NewSubprocessError(command, dir string, err error) error {
	return &DetailError{
		Type:     "command failed",
		Message:  fmt.Sprintf("%s: %v", command, err),
		Location: dir,
		Hint:     fmt.Sprintf("Run %q manually inside the project directory to see the full output.", command),
		Cause:    fmt.Errorf("%w: %w", ErrSubprocess, err),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
