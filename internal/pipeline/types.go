package pipeline

import (
	"context"

	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/scaffold"
)

// State is a step of one generation run.
type State int

const (
	AwaitingParameters State = iota
	ResolvingDependencies
	InstallingPackages
	InitializingSchema
	BuildingDirectories
	RenderingTemplates
	Done
	Failed
)

var stateNames = [...]string{
	AwaitingParameters:    "AwaitingParameters",
	ResolvingDependencies: "ResolvingDependencies",
	InstallingPackages:    "InstallingPackages",
	InitializingSchema:    "InitializingSchema",
	BuildingDirectories:   "BuildingDirectories",
	RenderingTemplates:    "RenderingTemplates",
	Done:                  "Done",
	Failed:                "Failed",
}

var stateActions = [...]string{
	AwaitingParameters:    "validating parameters",
	ResolvingDependencies: "resolving dependencies",
	InstallingPackages:    "installing packages",
	InitializingSchema:    "initializing schema",
	BuildingDirectories:   "building directories",
	RenderingTemplates:    "rendering templates",
	Done:                  "done",
	Failed:                "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Action returns a lowercase description used in messages.
func (s State) Action() string {
	if s < 0 || int(s) >= len(stateActions) {
		return "unknown"
	}
	return stateActions[s]
}

// Installer installs an ordered dependency set.
type Installer interface {
	Install(ctx context.Context, specs []deps.Specifier) error
}

// SchemaInitializer runs the schema tool once.
type SchemaInitializer interface {
	Init(ctx context.Context) error
}

// Options are the per-run parameters.
type Options struct {
	// Token is the resolved version token. The zero value is rejected.
	Token deps.Token

	// SkipInstall passes through InstallingPackages without calling the installer.
	SkipInstall bool

	// SkipSchema passes through InitializingSchema without calling the schema tool.
	SkipSchema bool
}

// Result describes a completed run.
type Result struct {
	// Specifiers is the dependency set handed to the installer.
	Specifiers []deps.Specifier

	// Directories are the skeleton paths ensured on disk.
	Directories []string

	// Files are the rendered files in write order.
	Files []scaffold.WrittenFile

	// Skipped lists states whose external call was skipped.
	Skipped []State
}
