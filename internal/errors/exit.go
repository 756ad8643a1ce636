package errors

import "errors"

// Exit codes returned by the nestgen binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input, configuration or templates.
	ExitValidationError = 2

	// ExitExternalCommandError indicates the installer or schema tool failed.
	ExitExternalCommandError = 3

	// ExitFilesystemError indicates a directory or file could not be written.
	ExitFilesystemError = 4

	// ExitNotFound indicates a template, config file or binary was not found.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
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
	case errors.Is(err, ErrMissingParameter), errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrExternalCommand):
		return ExitExternalCommandError
	case IsFilesystem(err):
		return ExitFilesystemError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
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
	case ExitExternalCommandError:
		return "External Command Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
