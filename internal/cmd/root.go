// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/nestgen/cli/internal/cmd/config"
	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/output"
	"github.com/nestgen/cli/internal/prompt"
	"github.com/nestgen/cli/internal/toolchain"
	"github.com/nestgen/cli/internal/version"
)

// Env holds the collaborators commands reach outside the process through.
// Zero fields fall back to the real implementations.
type Env struct {
	Runner   toolchain.CommandRunner
	Prompter prompt.Prompter
	Detector *version.Detector
}

func (e Env) runner() toolchain.CommandRunner {
	if e.Runner == nil {
		return toolchain.ExecRunner{}
	}
	return e.Runner
}

func (e Env) prompter() prompt.Prompter {
	if e.Prompter == nil {
		return prompt.Default()
	}
	return e.Prompter
}

func (e Env) detector() *version.Detector {
	if e.Detector == nil {
		return version.NewDetector()
	}
	return e.Detector
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the nestgen CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(Env{})
}

func newRootCmd(env Env) *cobra.Command {
	g := &cmdtypes.GlobalConfig{}
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "nestgen",
		Short: "NestJS project scaffolding generator",
		Long: `nestgen scaffolds a NestJS project with JWT authentication, a Prisma
database module and a uniform response envelope.

It installs the framework packages, initializes Prisma, creates the source
directory skeleton and writes a consistent set of TypeScript files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, g, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (env: NESTGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(g, env))
	rootCmd.AddCommand(NewPlanCmd(g))
	rootCmd.AddCommand(NewTemplatesCmd(g))
	rootCmd.AddCommand(configcmd.NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g, env))

	return rootCmd
}

// initializeGlobals resolves the config path, loads config and sets up
// logging. A config that fails to load is recorded, not fatal, so that
// config vet can still report on it.
func initializeGlobals(cmd *cobra.Command, g *cmdtypes.GlobalConfig, flags globalFlags) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return cmdtypes.Exit(err)
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(pathResult.ConfigPath)

	g.ConfigPath = loader.Path()
	if g.ConfigPath == "" {
		g.ConfigPath = pathResult.ConfigPath
	}
	g.ConfigSource = pathResult.Source
	g.Verbose = flags.verbose
	g.LoadErr = err
	g.Config = cfg
	if err == nil {
		g.Resolved = loader.Resolved()
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("nestgen started",
		"version", version.Version,
		"config", g.ConfigPath,
		"config_source", g.ConfigSource,
	)
	if err != nil {
		output.Debug("config load error", "error", err)
	}

	return nil
}
