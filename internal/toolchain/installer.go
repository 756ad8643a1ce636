package toolchain

import (
	"context"
	"time"

	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/output"
)

// Installer invokes the package manager once with the full dependency list.
type Installer struct {
	runner CommandRunner

	// Dir is the working directory, normally the project root.
	Dir string

	// Base is the install command without packages, e.g. "npm install".
	Base Command

	// PeerDepsFlag relaxes peer dependency resolution. Empty omits it.
	PeerDepsFlag string

	// Timeout bounds the call. Zero means no limit.
	Timeout time.Duration
}

// NewInstaller creates an installer running base in dir.
func NewInstaller(runner CommandRunner, dir string, base Command, peerDepsFlag string) *Installer {
	return &Installer{runner: runner, Dir: dir, Base: base, PeerDepsFlag: peerDepsFlag}
}

// Command returns the exact invocation for specs, in order.
func (i *Installer) Command(specs []deps.Specifier) Command {
	args := make([]string, 0, len(i.Base.Args)+len(specs)+1)
	args = append(args, i.Base.Args...)
	args = append(args, deps.Strings(specs)...)
	if i.PeerDepsFlag != "" {
		args = append(args, i.PeerDepsFlag)
	}
	return Command{Name: i.Base.Name, Args: args}
}

// Install runs the package manager and blocks until it exits.
func (i *Installer) Install(ctx context.Context, specs []deps.Specifier) error {
	c := i.Command(specs)
	output.Info("installing packages", "command", c.String(), "dir", i.Dir)

	ctx, cancel := withTimeout(ctx, i.Timeout)
	defer cancel()
	return execute(ctx, i.runner, i.Dir, c)
}

// SchemaInitializer runs the schema tool's init subcommand.
type SchemaInitializer struct {
	runner  CommandRunner
	Dir     string
	Cmd     Command
	Timeout time.Duration
}

// NewSchemaInitializer creates a schema initializer running cmd in dir.
func NewSchemaInitializer(runner CommandRunner, dir string, cmd Command) *SchemaInitializer {
	return &SchemaInitializer{runner: runner, Dir: dir, Cmd: cmd}
}

// Init runs the schema tool and blocks until it exits.
func (s *SchemaInitializer) Init(ctx context.Context) error {
	output.Info("initializing schema", "command", s.Cmd.String(), "dir", s.Dir)

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return execute(ctx, s.runner, s.Dir, s.Cmd)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
