package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the nestgen configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Every key in the file is known and satisfies the embedded CUE schema
  3. The merged configuration, including NESTGEN_* environment overrides,
     produces valid template constants

The config path is resolved using precedence:
  --config flag > NESTGEN_CONFIG env > ~/.nestgen/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, g)
		},
	}
}

func runVet(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	output.Debug("validating config",
		"path", g.ConfigPath,
		"source", g.ConfigSource,
	)

	v, err := config.NewValidator()
	if err != nil {
		return cmdtypes.Exit(err)
	}

	if err := v.ValidateFile(g.ConfigPath); err != nil {
		return cmdtypes.Exit(err)
	}

	cfg, err := g.Loaded()
	if err != nil {
		return cmdtypes.Exit(err)
	}
	if err := v.Validate(cfg); err != nil {
		return cmdtypes.Exit(err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+output.StyleNoun.Render(g.ConfigPath)))
	return nil
}
