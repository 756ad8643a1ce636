// Package prompt reads the version token from the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/nestgen/cli/internal/deps"
)

// VersionTitle is the question asked for the framework version.
const VersionTitle = "Which NestJS version should be installed? (e.g. 10.4.9 or latest)"

// Prompter reads one line of free text.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// HuhPrompter renders an interactive input field.
type HuhPrompter struct{}

// Input shows a huh input and returns what was typed.
func (HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

// LinePrompter reads a newline terminated line. EOF yields the text read
// so far, which may be empty.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Input prints title and reads one line.
func (p LinePrompter) Input(title string, _ []string) (string, error) {
	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	_, _ = fmt.Fprintf(out, "%s: ", title)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Default returns a HuhPrompter when stdin and stderr are terminals and a
// LinePrompter otherwise.
func Default() Prompter {
	if IsTerminal(os.Stdin) && IsTerminal(os.Stderr) {
		return HuhPrompter{}
	}
	return LinePrompter{In: os.Stdin, Out: os.Stderr}
}

// Version asks for the framework version and resolves it.
func Version(p Prompter) (deps.Token, error) {
	raw, err := p.Input(VersionTitle, []string{deps.LatestMarker})
	if err != nil {
		return deps.Token{}, fmt.Errorf("reading version: %w", err)
	}
	return deps.Resolve(raw), nil
}
