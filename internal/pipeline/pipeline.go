// Package pipeline sequences one generation run: resolve the dependency set,
// install it, initialize the schema tool, build the directory skeleton and
// write every template.
package pipeline

import (
	"context"
	"fmt"

	"github.com/nestgen/cli/internal/deps"
	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/output"
	"github.com/nestgen/cli/internal/scaffold"
	"github.com/nestgen/cli/internal/templates"
)

// Config holds the collaborators of a Pipeline.
type Config struct {
	Builder   *deps.Builder
	Installer Installer
	Schema    SchemaInitializer
	Skeleton  *scaffold.Skeleton
	Registry  *templates.Registry
	Constants templates.ProjectConstants

	// Around wraps the work of one state. Nil runs it directly.
	Around func(ctx context.Context, s State, work func() error) error

	// OnTransition is called after every state change.
	OnTransition func(from, to State)
}

// Pipeline is a single-use, strictly sequential generation run.
type Pipeline struct {
	cfg   Config
	state State
}

// New creates a pipeline in AwaitingParameters.
func New(cfg Config) *Pipeline {
	if cfg.Builder == nil {
		cfg.Builder = deps.NewBuilder()
	}
	if cfg.Registry == nil {
		cfg.Registry = templates.Default()
	}
	return &Pipeline{cfg: cfg, state: AwaitingParameters}
}

// State returns the current state.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes every state in order and stops at the first failure, which
// is returned as a *StageError. Nothing written before the failure is
// removed.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	if p.state != AwaitingParameters {
		return nil, fmt.Errorf("pipeline already ran (state %s)", p.state)
	}

	res := &Result{}

	steps := []struct {
		state State
		work  func() error
	}{
		{AwaitingParameters, func() error { return p.checkParameters(opts) }},
		{ResolvingDependencies, func() error {
			specs, err := p.cfg.Builder.Build(opts.Token)
			res.Specifiers = specs
			return err
		}},
		{InstallingPackages, func() error {
			if opts.SkipInstall || p.cfg.Installer == nil {
				res.Skipped = append(res.Skipped, InstallingPackages)
				output.Info("skipped", "step", InstallingPackages.Action())
				return nil
			}
			return p.cfg.Installer.Install(ctx, res.Specifiers)
		}},
		{InitializingSchema, func() error {
			if opts.SkipSchema || p.cfg.Schema == nil {
				res.Skipped = append(res.Skipped, InitializingSchema)
				output.Info("skipped", "step", InitializingSchema.Action())
				return nil
			}
			return p.cfg.Schema.Init(ctx)
		}},
		{BuildingDirectories, func() error {
			dirs, err := p.cfg.Skeleton.Ensure()
			res.Directories = dirs
			return err
		}},
		{RenderingTemplates, func() error {
			renderer := templates.NewRenderer(p.cfg.Registry, p.cfg.Constants)
			files, err := scaffold.NewGenerator(renderer, p.cfg.Skeleton.Base()).Generate()
			res.Files = files
			return err
		}},
	}

	for i, step := range steps {
		if i > 0 {
			p.transition(step.state)
		}
		if err := ctx.Err(); err != nil {
			return res, p.fail(err)
		}
		if err := p.around(ctx, step.state, step.work); err != nil {
			return res, p.fail(err)
		}
	}

	p.transition(Done)
	return res, nil
}

// checkParameters rejects an absent token and verifies that the registry,
// constants and skeleton agree before anything touches the disk.
func (p *Pipeline) checkParameters(opts Options) error {
	if opts.Token.IsZero() {
		return &oerrors.MissingParameterError{Name: "version"}
	}
	if p.cfg.Skeleton == nil {
		return &oerrors.MissingParameterError{Name: "project root"}
	}
	if err := templates.ValidateConstants(p.cfg.Constants); err != nil {
		return err
	}
	return p.cfg.Registry.CheckLayout(p.cfg.Skeleton.Dirs)
}

func (p *Pipeline) around(ctx context.Context, s State, work func() error) error {
	if p.cfg.Around == nil {
		return work()
	}
	return p.cfg.Around(ctx, s, work)
}

func (p *Pipeline) transition(to State) {
	from := p.state
	p.state = to
	output.Debug("state", "from", from, "to", to)
	if p.cfg.OnTransition != nil {
		p.cfg.OnTransition(from, to)
	}
}

func (p *Pipeline) fail(err error) error {
	failed := p.state
	p.transition(Failed)
	return &StageError{State: failed, Err: err}
}
