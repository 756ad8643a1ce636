// Package toolchain runs the external package manager and schema tool.
// Both are black boxes: their streams are passed through and only the exit
// status is inspected.
package toolchain

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// CommandRunner executes external commands.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec, inheriting the parent's streams
// unless overridden.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run runs name with args in dir and waits for it to finish.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
	return cmd.Run()
}

// RunOutput runs name with args in dir and returns combined output.
func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Command is an argv vector.
type Command struct {
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// NewCommand builds a Command from argv. An empty argv yields a zero Command.
func NewCommand(argv ...string) Command {
	if len(argv) == 0 {
		return Command{}
	}
	return Command{Name: argv[0], Args: append([]string(nil), argv[1:]...)}
}

// String joins the command with spaces.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// exitCoder matches *exec.ExitError and test doubles.
type exitCoder interface {
	ExitCode() int
}

// execute runs c through runner and converts any failure into an
// ExternalCommandError.
func execute(ctx context.Context, runner CommandRunner, dir string, c Command) error {
	if c.Name == "" {
		return oerrors.NewValidationError("command is empty", "", "command", "")
	}

	err := runner.Run(ctx, dir, c.Name, c.Args...)
	if err == nil {
		return nil
	}

	code := -1
	var ec exitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
		code = -1
	}
	return &oerrors.ExternalCommandError{
		Command:  c.Name,
		Args:     c.Args,
		ExitCode: code,
		Err:      err,
	}
}
