package config

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/nestgen/cli/internal/errors"
)

const configHeader = "# nestgen configuration\n# Environment variables (NESTGEN_*) take precedence over values in this file.\n\n"

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		exists, err := ConfigFileExists(expanded)
		if err != nil {
			return err
		}
		if exists {
			return oerrors.NewValidationError(
				fmt.Sprintf("config file already exists: %s", expanded), expanded, "",
				"use --force to overwrite")
		}
	}

	data, err := DefaultYAML()
	if err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return &oerrors.DirectoryCreationError{Path: filepath.Dir(expanded), Err: err}
	}
	if err := os.WriteFile(expanded, append([]byte(configHeader), data...), 0o644); err != nil {
		return &oerrors.WriteError{Path: expanded, Err: err}
	}
	return nil
}
