package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/cmdutil"
	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/output"
	"github.com/nestgen/cli/internal/pipeline"
	"github.com/nestgen/cli/internal/prompt"
)

// NewInitCmd creates the init command.
func NewInitCmd(g *cmdtypes.GlobalConfig, env Env) *cobra.Command {
	var (
		gf          cmdutil.GenerationFlags
		skipInstall bool
		skipSchema  bool
	)

	c := &cobra.Command{
		Use:   "init [project-dir]",
		Short: "Scaffold authentication, Prisma and response handling into a project",
		Long: `Scaffold a NestJS project.

Steps, in order:
  1. Resolve the dependency set from --nest-version (prompted when omitted)
  2. Install the packages with the configured package manager
  3. Run the Prisma initializer
  4. Create the source directory skeleton
  5. Render and write every template, overwriting existing files

The first failing step stops the run. Files written by earlier steps are
left in place.

The package manager and the schema initializer run inside project-dir, so
it must already exist unless both are skipped.

Examples:
  # Pin the framework packages to 10.4.9 in the current directory
  nestgen init --nest-version 10.4.9

  # Generate files only, into ./api
  nestgen init ./api --nest-version latest --skip-install --skip-schema`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, args, g, env, &gf, pipeline.Options{
				SkipInstall: skipInstall,
				SkipSchema:  skipSchema,
			})
		},
	}

	gf.AddTo(c)
	c.Flags().BoolVar(&skipInstall, "skip-install", false, "Do not run the package manager")
	c.Flags().BoolVar(&skipSchema, "skip-schema", false, "Do not run the schema initializer")

	return c
}

func runInit(c *cobra.Command, args []string, g *cmdtypes.GlobalConfig, env Env, gf *cmdutil.GenerationFlags, opts pipeline.Options) error {
	loaded, err := g.Loaded()
	if err != nil {
		return cmdtypes.Exit(err)
	}
	cfg, resolved, err := gf.Apply(c, loaded, g.Resolved)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	config.LogResolvedValues(resolved)

	validator, err := config.NewValidator()
	if err != nil {
		return cmdtypes.Exit(err)
	}
	if err := validator.Validate(cfg); err != nil {
		return cmdtypes.Exit(err)
	}

	dir := cmdutil.ResolveProjectDir(args)
	if !opts.SkipInstall || !opts.SkipSchema {
		if err := cmdutil.CheckProjectDir(dir); err != nil {
			return cmdtypes.Exit(err)
		}
	}

	if gf.VersionSet(c) {
		opts.Token = deps.Resolve(gf.NestVersion)
	} else {
		opts.Token, err = prompt.Version(env.prompter())
		if err != nil {
			return cmdtypes.Exit(err)
		}
	}

	setup, err := cmdutil.NewSetup(cfg, dir, env.runner())
	if err != nil {
		return cmdtypes.Exit(err)
	}

	name := dir
	if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}
	output.ProjectLogger(name).Info("generating project",
		"dir", dir,
		"version", opts.Token.String(),
	)

	res, err := setup.Pipeline().Run(c.Context(), opts)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	cmdutil.WriteResult(c.OutOrStdout(), cfg.SourceRoot, res)
	return nil
}
