package cmdutil

import (
	"context"
	"path"

	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/deps"
	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/output"
	"github.com/nestgen/cli/internal/pipeline"
	"github.com/nestgen/cli/internal/scaffold"
	"github.com/nestgen/cli/internal/templates"
	"github.com/nestgen/cli/internal/toolchain"
)

// Setup holds every collaborator of one generation run, built from config.
type Setup struct {
	Builder   *deps.Builder
	Installer *toolchain.Installer
	Schema    *toolchain.SchemaInitializer
	Skeleton  *scaffold.Skeleton
	Registry  *templates.Registry
	Constants templates.ProjectConstants
}

// NewSetup wires the collaborators for a run rooted at root. External
// commands go through runner.
func NewSetup(cfg *config.Config, root string, runner toolchain.CommandRunner) (*Setup, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "commandTimeout", "use a Go duration such as 30s or 5m")
	}

	installer := toolchain.NewInstaller(runner, root, cfg.InstallCommand(), cfg.PeerDepsFlag)
	installer.Timeout = timeout

	schema := toolchain.NewSchemaInitializer(runner, root, cfg.SchemaInitCommand())
	schema.Timeout = timeout

	return &Setup{
		Builder:   cfg.DependencyBuilder(),
		Installer: installer,
		Schema:    schema,
		Skeleton:  scaffold.NewSkeleton(root, cfg.SourceRoot),
		Registry:  templates.Default(),
		Constants: cfg.Constants(),
	}, nil
}

// Pipeline returns a fresh pipeline over the collaborators. Template
// rendering runs behind a spinner on a terminal.
func (s *Setup) Pipeline() *pipeline.Pipeline {
	return pipeline.New(pipeline.Config{
		Builder:   s.Builder,
		Installer: s.Installer,
		Schema:    s.Schema,
		Skeleton:  s.Skeleton,
		Registry:  s.Registry,
		Constants: s.Constants,
		Around:    SpinRendering,
	})
}

// SpinRendering runs the RenderingTemplates state behind a spinner and
// every other state directly.
func SpinRendering(ctx context.Context, s pipeline.State, work func() error) error {
	if s != pipeline.RenderingTemplates {
		return work()
	}
	return output.RunWithSpinner(ctx, work, output.WithTitle("Rendering templates..."))
}

// Plan is the dry-run view of a generation run.
type Plan struct {
	Version      string              `json:"version"`
	Dependencies []deps.Specifier    `json:"dependencies"`
	Install      toolchain.Command   `json:"install"`
	Schema       toolchain.Command   `json:"schema"`
	SourceRoot   string              `json:"sourceRoot"`
	Directories  []string            `json:"directories"`
	Templates    []PlanTemplate      `json:"templates"`
	Constants    PlanConstantSummary `json:"constants"`
}

// PlanTemplate is one template and where it will be written.
type PlanTemplate struct {
	ID          templates.ID   `json:"id"`
	Path        string         `json:"path"`
	Imports     []templates.ID `json:"imports,omitempty"`
	Description string         `json:"description,omitempty"`
}

// PlanConstantSummary lists the configurable values rendered into files.
type PlanConstantSummary struct {
	TokenTTL     string `json:"tokenTTL"`
	GlobalPrefix string `json:"globalPrefix"`
	DocsPath     string `json:"docsPath"`
	DefaultPort  int    `json:"defaultPort"`
}

// Plan computes what a run with token would do, without side effects.
// It fails the same way the pipeline's first two states would.
func (s *Setup) Plan(token deps.Token) (*Plan, error) {
	if err := templates.ValidateConstants(s.Constants); err != nil {
		return nil, err
	}
	if err := s.Registry.CheckLayout(s.Skeleton.Dirs); err != nil {
		return nil, err
	}

	specs, err := s.Builder.Build(token)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, len(s.Skeleton.Dirs))
	for i, d := range s.Skeleton.Dirs {
		dirs[i] = path.Join(s.Skeleton.SourceRoot, d)
	}

	return &Plan{
		Version:      token.String(),
		Dependencies: specs,
		Install:      s.Installer.Command(specs),
		Schema:       s.Schema.Cmd,
		SourceRoot:   s.Skeleton.SourceRoot,
		Directories:  dirs,
		Templates:    s.Templates(),
		Constants: PlanConstantSummary{
			TokenTTL:     s.Constants.TokenTTL,
			GlobalPrefix: s.Constants.GlobalPrefix,
			DocsPath:     s.Constants.DocsPath,
			DefaultPort:  s.Constants.DefaultPort,
		},
	}, nil
}

// Templates lists the registry with destinations under the source root.
func (s *Setup) Templates() []PlanTemplate {
	descs := s.Registry.List()
	tmpls := make([]PlanTemplate, len(descs))
	for i, d := range descs {
		tmpls[i] = PlanTemplate{
			ID:          d.ID,
			Path:        path.Join(s.Skeleton.SourceRoot, d.Path),
			Imports:     d.Imports,
			Description: d.Description,
		}
	}
	return tmpls
}
