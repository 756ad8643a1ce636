package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrMissingParameter indicates a required generation input was absent.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrExternalCommand indicates the package installer or schema tool failed.
	ErrExternalCommand = errors.New("external command failed")

	// ErrDirectoryCreation indicates a skeleton directory could not be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrWrite indicates a generated file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrValidation indicates invalid configuration or template metadata.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, config file or binary was not found.
	ErrNotFound = errors.New("not found")
)
