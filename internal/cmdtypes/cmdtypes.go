// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/nestgen/cli/internal/config"
	oerrors "github.com/nestgen/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the merged configuration (defaults, file, env).
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ConfigSource says where ConfigPath came from.
	ConfigSource config.ConfigSource

	// Resolved records each config key's value and winning source.
	Resolved []config.ResolvedValue

	// LoadErr is the error from loading the config file, if any. Commands
	// that generate output from config refuse to run when it is set.
	LoadErr error

	Verbose bool
}

// Loaded returns the merged config, or LoadErr when loading failed.
func (g *GlobalConfig) Loaded() (*config.Config, error) {
	if g.LoadErr != nil {
		return nil, g.LoadErr
	}
	if g.Config == nil {
		return config.DefaultConfig(), nil
	}
	return g.Config, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess              = oerrors.ExitSuccess
	ExitGeneralError         = oerrors.ExitGeneralError
	ExitValidationError      = oerrors.ExitValidationError
	ExitExternalCommandError = oerrors.ExitExternalCommandError
	ExitFilesystemError      = oerrors.ExitFilesystemError
	ExitNotFound             = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// Exit wraps err in an ExitError carrying the code derived from its cause.
// Nil stays nil.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
