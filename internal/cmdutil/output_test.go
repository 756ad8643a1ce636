package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestgen/cli/internal/config"
	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/pipeline"
	"github.com/nestgen/cli/internal/scaffold"
	"github.com/nestgen/cli/internal/templates"
	"github.com/nestgen/cli/internal/testutil"
)

func TestWriteResult(t *testing.T) {
	res := &pipeline.Result{
		Files: []scaffold.WrittenFile{
			{ID: templates.Main, Rel: "main.ts"},
			{ID: templates.AuthGuard, Rel: "common/guards/auth.guard.ts", Overwritten: true},
		},
		Skipped: []pipeline.State{pipeline.InitializingSchema},
	}

	var buf bytes.Buffer
	WriteResult(&buf, "src", res)
	out := buf.String()

	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "main.ts")
	assert.Contains(t, out, "auth.guard.ts")
	assert.Contains(t, out, "overwritten")
	assert.Contains(t, out, "skipped initializing schema")
	assert.Contains(t, out, "Generated 2 files")
	assert.Contains(t, out, "(1 overwritten)")
}

func TestWritePlanTable(t *testing.T) {
	s, err := NewSetup(config.DefaultConfig(), "/proj", &testutil.FakeRunner{})
	require.NoError(t, err)
	p, err := s.Plan(deps.Resolve("10.4.9"))
	require.NoError(t, err)

	var buf bytes.Buffer
	WritePlanTable(&buf, p)
	out := buf.String()

	assert.Contains(t, out, "@nestjs/core")
	assert.Contains(t, out, "10.4.9")
	assert.Contains(t, out, "pinned")
	assert.Contains(t, out, "unpinned")
	assert.Contains(t, out, "npx prisma init")
	assert.Contains(t, out, "src/common/guards")
	assert.Contains(t, out, "auth-controller")
}

func TestWriteTemplateList(t *testing.T) {
	tmpls := []PlanTemplate{
		{ID: templates.Main, Path: "src/main.ts"},
		{ID: templates.LoginDTO, Path: "src/auth/dto/login.dto.ts"},
	}

	var buf bytes.Buffer
	WriteTemplateList(&buf, "src", tmpls)
	out := buf.String()

	assert.Contains(t, out, "dto/")
	assert.Contains(t, out, "login.dto.ts")
	assert.Contains(t, out, "login-dto")
	assert.NotContains(t, out, "src/src")
}
