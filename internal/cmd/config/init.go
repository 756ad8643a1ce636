package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new nestgen configuration file",
		Long: `Create a new nestgen configuration file with default values.

The configuration file is created at ~/.nestgen/config.yaml by default.
Use --config or NESTGEN_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := config.WriteDefault(g.ConfigPath, force); err != nil {
				return cmdtypes.Exit(err)
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+output.StyleNoun.Render(g.ConfigPath)))
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}
