package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MissingParameterError reports a required input that was never supplied.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Name)
}

// Is reports whether target is ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// ExternalCommandError reports a non-zero exit (or a failure to start) of an
// external collaborator such as the package installer.
type ExternalCommandError struct {
	// Command is the binary that was invoked.
	Command string

	// Args are the arguments passed to Command.
	Args []string

	// ExitCode is the process exit status, or -1 if it never ran.
	ExitCode int

	// Err is the underlying exec error.
	Err error
}

func (e *ExternalCommandError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with status %d", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", cmdline, e.Err)
}

// Unwrap returns the underlying exec error.
func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExternalCommand.
func (e *ExternalCommandError) Is(target error) bool {
	return target == ErrExternalCommand
}

// DirectoryCreationError names the skeleton directory that could not be created.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("creating directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDirectoryCreation.
func (e *DirectoryCreationError) Is(target error) bool {
	return target == ErrDirectoryCreation
}

// WriteError names the destination file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// IsFilesystem reports whether err came from directory creation or a file write.
func IsFilesystem(err error) bool {
	return errors.Is(err, ErrDirectoryCreation) || errors.Is(err, ErrWrite)
}
