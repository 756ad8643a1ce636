// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// Call is one recorded command invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Argv returns the binary followed by its arguments.
func (c Call) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// FakeRunner records commands instead of executing them.
type FakeRunner struct {
	Calls []Call

	// Fail maps a binary name to the error its invocation returns.
	Fail map[string]error

	// Err is returned by every call not listed in Fail.
	Err error

	// Block makes Run wait for context cancellation.
	Block bool

	// Output maps a binary name to what RunOutput returns.
	Output map[string]string
}

// Run records the call and returns the configured error.
func (f *FakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: args})
	if f.Block {
		<-ctx.Done()
		return errors.New("signal: killed")
	}
	if err, ok := f.Fail[name]; ok {
		return err
	}
	return f.Err
}

// RunOutput records the call and returns the configured output.
func (f *FakeRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := f.Run(ctx, dir, name, args...); err != nil {
		return nil, err
	}
	return []byte(f.Output[name]), nil
}

// Argv returns every recorded argv in call order.
func (f *FakeRunner) Argv() [][]string {
	out := make([][]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.Argv()
	}
	return out
}

// ExitStatus is an error carrying a process exit code.
type ExitStatus int

func (e ExitStatus) Error() string { return "exit status" }

// ExitCode returns the status.
func (e ExitStatus) ExitCode() int { return int(e) }

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ListFiles returns the slash separated paths of every regular file under
// root, sorted.
func ListFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	slices.Sort(files)
	return files
}
