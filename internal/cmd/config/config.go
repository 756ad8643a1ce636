// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/nestgen/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the nestgen CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(g))
	c.AddCommand(NewConfigVetCmd(g))
	c.AddCommand(NewConfigDiffCmd(g))

	return c
}
