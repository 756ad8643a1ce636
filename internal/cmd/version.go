package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(g *cmdtypes.GlobalConfig, env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show nestgen version information.

Displays:
  - nestgen version, commit and build date
  - the package manager and schema tool found in PATH, with their versions`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := g.Config
			if cfg == nil {
				cfg = config.DefaultConfig()
			}

			tools := []string{cfg.PackageManager}
			if len(cfg.SchemaCommand) > 0 {
				tools = append(tools, cfg.SchemaCommand[0])
			}

			infos := env.detector().Detect(c.Context(), tools...)
			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(version.Get(), infos))
			return nil
		},
	}
}
