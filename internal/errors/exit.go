package errors

import (
	"errors"
	"io/fs"
)

// Exit codes returned by the create-vite binary.
const (
	// ExitSuccess indicates the command completed, or the user backed out.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags, config or template input.
	ExitValidationError = 2

	// ExitFilesystemError indicates a filesystem operation failed.
	ExitFilesystemError = 3

	// ExitSubprocessError indicates the package manager command failed.
	ExitSubprocessError = 4

	// ExitNotFound indicates a template or path was not found.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, ErrSubprocess):
		return ExitSubprocessError
	case errors.Is(err, ErrFilesystem), errors.Is(err, ErrPermission), errors.Is(err, fs.ErrPermission):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	case ExitSubprocessError:
		return "Subprocess Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
