// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/templates"
	"github.com/nestgen/cli/internal/toolchain"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the nestgen configuration.
// Loaded from ~/.nestgen/config.yaml, validated against an embedded CUE schema.
type Config struct {
	// PackageManager is the installer binary.
	// Env: NESTGEN_PACKAGE_MANAGER
	PackageManager string `json:"packageManager,omitempty" yaml:"packageManager" mapstructure:"packageManager"`

	// InstallArgs are placed between the binary and the package list.
	InstallArgs []string `json:"installArgs,omitempty" yaml:"installArgs" mapstructure:"installArgs"`

	// PeerDepsFlag is appended after the package list.
	// Env: NESTGEN_PEER_DEPS_FLAG
	PeerDepsFlag string `json:"peerDepsFlag,omitempty" yaml:"peerDepsFlag" mapstructure:"peerDepsFlag"`

	// SchemaCommand is the schema initializer argv.
	SchemaCommand []string `json:"schemaCommand,omitempty" yaml:"schemaCommand" mapstructure:"schemaCommand"`

	// SourceRoot is the directory under the project root that receives
	// generated files.
	// Env: NESTGEN_SOURCE_ROOT
	SourceRoot string `json:"sourceRoot,omitempty" yaml:"sourceRoot" mapstructure:"sourceRoot"`

	// Secret is the JWT signing-secret placeholder.
	// Env: NESTGEN_SECRET
	Secret string `json:"secret,omitempty" yaml:"secret" mapstructure:"secret"`

	// TokenTTL is the JWT expiry, e.g. "24h" or "7d".
	// Env: NESTGEN_TOKEN_TTL
	TokenTTL string `json:"tokenTTL,omitempty" yaml:"tokenTTL" mapstructure:"tokenTTL"`

	// GlobalPrefix is the HTTP route prefix.
	// Env: NESTGEN_GLOBAL_PREFIX
	GlobalPrefix string `json:"globalPrefix,omitempty" yaml:"globalPrefix" mapstructure:"globalPrefix"`

	// DefaultPort is used when PORT is unset in the generated app.
	// Env: NESTGEN_DEFAULT_PORT
	DefaultPort int `json:"defaultPort,omitempty" yaml:"defaultPort" mapstructure:"defaultPort"`

	// ExtraPackages are appended, unpinned, to the dependency set.
	ExtraPackages []string `json:"extraPackages,omitempty" yaml:"extraPackages" mapstructure:"extraPackages"`

	// CommandTimeout bounds each external call. "0s" means no limit.
	// Env: NESTGEN_COMMAND_TIMEOUT
	CommandTimeout string `json:"commandTimeout,omitempty" yaml:"commandTimeout" mapstructure:"commandTimeout"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `nestgen config init` and as the base layer when loading.
func DefaultConfig() *Config {
	c := templates.DefaultConstants()
	timestamps := true
	return &Config{
		PackageManager: "npm",
		InstallArgs:    []string{"install"},
		PeerDepsFlag:   "--legacy-peer-deps",
		SchemaCommand:  []string{"npx", "prisma", "init"},
		SourceRoot:     "src",
		Secret:         c.Secret,
		TokenTTL:       c.TokenTTL,
		GlobalPrefix:   c.GlobalPrefix,
		DefaultPort:    c.DefaultPort,
		ExtraPackages:  []string{},
		CommandTimeout: "0s",
		Log:            LogConfig{Timestamps: &timestamps},
	}
}

// Timeout parses CommandTimeout. Empty means no limit.
func (c *Config) Timeout() (time.Duration, error) {
	if c.CommandTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid commandTimeout %q: %w", c.CommandTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid commandTimeout %q: must not be negative", c.CommandTimeout)
	}
	return d, nil
}

// Constants returns the template constants with configured overrides applied.
func (c *Config) Constants() templates.ProjectConstants {
	pc := templates.DefaultConstants()
	if c.Secret != "" {
		pc.Secret = c.Secret
	}
	if c.TokenTTL != "" {
		pc.TokenTTL = c.TokenTTL
	}
	if c.GlobalPrefix != "" {
		pc.GlobalPrefix = c.GlobalPrefix
	}
	if c.DefaultPort != 0 {
		pc.DefaultPort = c.DefaultPort
	}
	return pc
}

// InstallCommand returns the installer command without packages.
func (c *Config) InstallCommand() toolchain.Command {
	return toolchain.Command{Name: c.PackageManager, Args: append([]string(nil), c.InstallArgs...)}
}

// SchemaInitCommand returns the schema initializer command.
func (c *Config) SchemaInitCommand() toolchain.Command {
	return toolchain.NewCommand(c.SchemaCommand...)
}

// DependencyBuilder returns a builder over the built-in catalogue plus
// ExtraPackages.
func (c *Config) DependencyBuilder() *deps.Builder {
	return deps.NewBuilder(c.ExtraPackages...)
}
