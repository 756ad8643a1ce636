package version

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/nestgen/cli/internal/toolchain"
)

// toolVersionRegex matches output like "10.8.2" or "v20.11.0".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// ToolInfo describes an external binary found (or not) in PATH.
type ToolInfo struct {
	// Name is the binary name looked up.
	Name string `json:"name"`

	// Version is the reported version, without a "v" prefix.
	Version string `json:"version,omitempty"`

	// Path is the resolved binary path.
	Path string `json:"path,omitempty"`

	// Found indicates the binary is in PATH.
	Found bool `json:"found"`

	// Message explains a detection failure.
	Message string `json:"message,omitempty"`
}

// String returns a one-line summary.
func (t ToolInfo) String() string {
	switch {
	case !t.Found:
		return fmt.Sprintf("  %-8s not found", t.Name)
	case t.Version == "":
		return fmt.Sprintf("  %-8s unknown version (%s)", t.Name, t.Path)
	default:
		return fmt.Sprintf("  %-8s %s (%s)", t.Name, t.Version, t.Path)
	}
}

// Detector locates tools and asks them for their version.
type Detector struct {
	LookPath func(file string) (string, error)
	Runner   toolchain.CommandRunner
}

// NewDetector returns a Detector backed by PATH lookup and os/exec.
func NewDetector() *Detector {
	return &Detector{
		LookPath: exec.LookPath,
		Runner:   toolchain.ExecRunner{},
	}
}

// Detect reports on each named tool, in order. Duplicate names are
// reported once.
func (d *Detector) Detect(ctx context.Context, names ...string) []ToolInfo {
	seen := make(map[string]bool, len(names))
	infos := make([]ToolInfo, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		infos = append(infos, d.detect(ctx, name))
	}
	return infos
}

func (d *Detector) detect(ctx context.Context, name string) ToolInfo {
	path, err := d.LookPath(name)
	if err != nil {
		return ToolInfo{Name: name, Message: name + " not found in PATH"}
	}

	info := ToolInfo{Name: name, Path: path, Found: true}
	out, err := d.Runner.RunOutput(ctx, "", path, "--version")
	if err != nil {
		info.Message = "failed to get version: " + err.Error()
		return info
	}

	v, err := extractVersion(string(out))
	if err != nil {
		info.Message = err.Error()
		return info
	}
	info.Version = v
	return info
}

// extractVersion returns the first version number in output, without a
// "v" prefix.
func extractVersion(output string) (string, error) {
	match := toolVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: strings.TrimSpace(output)}
	}
	return strings.TrimPrefix(match, "v"), nil
}

// versionParseError indicates failure to parse tool version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + e.output
}
