package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates bad user input that cannot be corrected interactively.
	ErrValidation = errors.New("validation error")

	// ErrFilesystem indicates a create, list, remove, copy or write failure.
	ErrFilesystem = errors.New("filesystem error")

	// ErrSubprocess indicates an external command failed to start or exited non-zero.
	ErrSubprocess = errors.New("subprocess error")

	// ErrPermission indicates insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, file or directory was not found.
	ErrNotFound = errors.New("not found")
)
