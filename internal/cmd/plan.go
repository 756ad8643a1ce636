package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/cmdutil"
	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/deps"
	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/output"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		gf     cmdutil.GenerationFlags
		format string
	)

	c := &cobra.Command{
		Use:   "plan [project-dir]",
		Short: "Show what init would do",
		Long: `Show what init would do without running anything.

Prints the dependency set, the exact installer and schema commands, the
directory skeleton and every template destination. Without --nest-version
the unpinned "latest" set is shown.

Examples:
  nestgen plan --nest-version 10.4.9
  nestgen plan -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlan(c, args, g, &gf, format)
		},
	}

	gf.AddTo(c)
	c.Flags().StringVarP(&format, "output", "o", "table",
		fmt.Sprintf("Output format: %s", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runPlan(c *cobra.Command, args []string, g *cmdtypes.GlobalConfig, gf *cmdutil.GenerationFlags, rawFormat string) error {
	format, ok := output.ParseFormat(rawFormat)
	if !ok {
		return cmdtypes.Exit(oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", rawFormat), "", "output",
			"use one of: "+strings.Join(output.ValidFormats(), ", ")))
	}

	loaded, err := g.Loaded()
	if err != nil {
		return cmdtypes.Exit(err)
	}
	cfg, resolved, err := gf.Apply(c, loaded, g.Resolved)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	config.LogResolvedValues(resolved)

	token := deps.Resolve(deps.LatestMarker)
	if gf.VersionSet(c) {
		token = deps.Resolve(gf.NestVersion)
	}

	setup, err := cmdutil.NewSetup(cfg, cmdutil.ResolveProjectDir(args), nil)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	plan, err := setup.Plan(token)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	if format == output.FormatTable {
		cmdutil.WritePlanTable(c.OutOrStdout(), plan)
		return nil
	}
	return cmdtypes.Exit(output.WriteStructured(c.OutOrStdout(), format, plan))
}
