// Package cmdutil provides shared command utilities: generation flag
// handling, pipeline assembly and result output.
package cmdutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/config"
	oerrors "github.com/nestgen/cli/internal/errors"
)

// GenerationFlags holds flags shared by commands that resolve a
// generation run (init, plan).
type GenerationFlags struct {
	NestVersion    string
	Secret         string
	PackageManager string
}

// AddTo registers the generation flags on the given cobra command.
func (f *GenerationFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.NestVersion, "nest-version", "",
		"NestJS version to pin, or \"latest\" (prompted when omitted)")
	cmd.Flags().StringVar(&f.Secret, "secret", "",
		"JWT signing secret placeholder (env: NESTGEN_SECRET)")
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		"Package manager binary (env: NESTGEN_PACKAGE_MANAGER)")
}

// Apply returns a copy of cfg with explicitly set flags layered on top,
// and records them in resolved. A flag set to an empty string is a
// validation error.
func (f *GenerationFlags) Apply(cmd *cobra.Command, cfg *config.Config, resolved []config.ResolvedValue) (*config.Config, []config.ResolvedValue, error) {
	out := *cfg
	if cmd.Flags().Changed("secret") {
		if err := requireValue("secret", f.Secret); err != nil {
			return nil, nil, err
		}
		out.Secret = f.Secret
		resolved = config.Override(resolved, "secret", f.Secret)
	}
	if cmd.Flags().Changed("package-manager") {
		if err := requireValue("package-manager", f.PackageManager); err != nil {
			return nil, nil, err
		}
		out.PackageManager = f.PackageManager
		resolved = config.Override(resolved, "packageManager", f.PackageManager)
	}
	return &out, resolved, nil
}

func requireValue(flag, value string) error {
	if value != "" {
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("--%s must not be empty", flag), "", flag,
		fmt.Sprintf("omit --%s to use the configured value", flag))
}

// VersionSet reports whether --nest-version was given.
func (f *GenerationFlags) VersionSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("nest-version")
}

// ResolveProjectDir returns the project directory from command args,
// defaulting to the current directory.
func ResolveProjectDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// CheckProjectDir verifies that dir exists and is a directory. The
// installer and schema initializer run inside it.
func CheckProjectDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return oerrors.NewNotFoundError(
			fmt.Sprintf("project directory %q does not exist", dir), dir,
			"create it first, or pass --skip-install --skip-schema to only generate files")
	case err != nil:
		return fmt.Errorf("checking project directory %q: %w", dir, err)
	case !info.IsDir():
		return oerrors.NewValidationError(
			fmt.Sprintf("project path %q is not a directory", dir), dir, "project-dir", "")
	}
	return nil
}
