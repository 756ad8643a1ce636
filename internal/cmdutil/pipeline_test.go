package cmdutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/deps"
	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/pipeline"
	"github.com/nestgen/cli/internal/testutil"
)

func TestNewSetup_InvalidTimeout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CommandTimeout = "eventually"

	_, err := NewSetup(cfg, t.TempDir(), &testutil.FakeRunner{})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestSetup_Plan(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExtraPackages = []string{"helmet"}

	s, err := NewSetup(cfg, "/proj", &testutil.FakeRunner{})
	require.NoError(t, err)

	p, err := s.Plan(deps.Resolve("10.4.9"))
	require.NoError(t, err)

	assert.Equal(t, "10.4.9", p.Version)
	assert.Equal(t, "npm", p.Install.Name)
	assert.Equal(t, "install", p.Install.Args[0])
	assert.Contains(t, p.Install.Args, "@nestjs/core@10.4.9")
	assert.Contains(t, p.Install.Args, "helmet")
	assert.Equal(t, "--legacy-peer-deps", p.Install.Args[len(p.Install.Args)-1])
	assert.Equal(t, "npx prisma init", p.Schema.String())
	assert.Contains(t, p.Directories, "src/auth/dto")
	require.Len(t, p.Templates, s.Registry.Len())
	assert.Equal(t, "src/main.ts", p.Templates[len(p.Templates)-1].Path)
	assert.Equal(t, "24h", p.Constants.TokenTTL)
}

func TestSetup_PlanLatest(t *testing.T) {
	s, err := NewSetup(config.DefaultConfig(), "/proj", &testutil.FakeRunner{})
	require.NoError(t, err)

	p, err := s.Plan(deps.Resolve("LATEST"))
	require.NoError(t, err)

	assert.Equal(t, "latest", p.Version)
	for _, d := range p.Dependencies {
		assert.False(t, d.Pinned, d.Name)
	}
}

func TestSetup_PlanRejectsAbsentToken(t *testing.T) {
	s, err := NewSetup(config.DefaultConfig(), "/proj", &testutil.FakeRunner{})
	require.NoError(t, err)

	_, err = s.Plan(deps.Token{})
	assert.ErrorIs(t, err, oerrors.ErrMissingParameter)
}

func TestSetup_PlanRejectsInvalidConstants(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultPort = 70000

	s, err := NewSetup(cfg, "/proj", &testutil.FakeRunner{})
	require.NoError(t, err)

	_, err = s.Plan(deps.Resolve("latest"))
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestSetup_PipelineRuns(t *testing.T) {
	root := t.TempDir()
	runner := &testutil.FakeRunner{}
	cfg := config.DefaultConfig()
	cfg.SourceRoot = "app"

	s, err := NewSetup(cfg, root, runner)
	require.NoError(t, err)

	res, err := s.Pipeline().Run(context.Background(), pipeline.Options{Token: deps.Resolve("latest")})
	require.NoError(t, err)

	require.Len(t, runner.Argv(), 2)
	assert.Equal(t, "npm", runner.Argv()[0][0])
	assert.Equal(t, []string{"npx", "prisma", "init"}, runner.Argv()[1])
	assert.Len(t, res.Files, s.Registry.Len())

	_, err = os.Stat(filepath.Join(root, "app", "main.ts"))
	assert.NoError(t, err)
}

func TestSpinRendering_PassesThrough(t *testing.T) {
	called := 0
	work := func() error { called++; return nil }

	require.NoError(t, SpinRendering(context.Background(), pipeline.InstallingPackages, work))
	require.NoError(t, SpinRendering(context.Background(), pipeline.RenderingTemplates, work))
	assert.Equal(t, 2, called)
}
