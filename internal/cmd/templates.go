package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/cmdutil"
	"github.com/nestgen/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "templates [id]",
		Short: "List templates or print one rendered",
		Long: `List the registered templates, or print the rendered text of one.

Rendering uses the configured secret, token TTL, global prefix and port.

Examples:
  nestgen templates
  nestgen templates auth-guard`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplates(c, args, g)
		},
	}
}

func runTemplates(c *cobra.Command, args []string, g *cmdtypes.GlobalConfig) error {
	cfg, err := g.Loaded()
	if err != nil {
		return cmdtypes.Exit(err)
	}

	setup, err := cmdutil.NewSetup(cfg, ".", nil)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	if len(args) == 0 {
		cmdutil.WriteTemplateList(c.OutOrStdout(), setup.Skeleton.SourceRoot, setup.Templates())
		return nil
	}

	if err := templates.ValidateConstants(setup.Constants); err != nil {
		return cmdtypes.Exit(err)
	}

	file, err := templates.NewRenderer(setup.Registry, setup.Constants).Render(templates.ID(args[0]))
	if err != nil {
		return cmdtypes.Exit(err)
	}

	fmt.Fprintln(c.OutOrStdout(), string(bytes.TrimSpace(file.Content)))
	return nil
}
