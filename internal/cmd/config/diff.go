package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/config"
	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/output"
)

// NewConfigDiffCmd creates the config diff command.
func NewConfigDiffCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how the config file differs from the defaults",
		Long: `Compare the configuration file with the built-in defaults.

The comparison is YAML-aware: key order and formatting are ignored and only
changed, added and removed values are reported.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			exists, err := config.ConfigFileExists(g.ConfigPath)
			if err != nil {
				return cmdtypes.Exit(err)
			}
			if !exists {
				return cmdtypes.Exit(oerrors.NewNotFoundError(
					"configuration file not found", g.ConfigPath,
					"run 'nestgen config init' to create default configuration"))
			}

			report, err := config.Diff(g.ConfigPath, output.IsTTY())
			if err != nil {
				return cmdtypes.Exit(err)
			}
			if report == "" {
				fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("No differences from defaults"))
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), report)
			return nil
		},
	}
}
