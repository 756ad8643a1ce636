package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestgen/cli/internal/cmdtypes"
	"github.com/nestgen/cli/internal/config"
	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/testutil"
)

func globalFor(t *testing.T, path string) *cmdtypes.GlobalConfig {
	t.Helper()
	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	return &cmdtypes.GlobalConfig{Config: cfg, ConfigPath: path, LoadErr: err}
}

func run(t *testing.T, g *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	c := NewConfigCmd(g)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestNewConfigCmd(t *testing.T) {
	c := NewConfigCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "config", c.Use)
	names := make([]string, 0)
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet", "diff"}, names)
	assert.NotNil(t, NewConfigInitCmd(&cmdtypes.GlobalConfig{}).Flags().Lookup("force"))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nestgen", "config.yaml")
	g := &cmdtypes.GlobalConfig{ConfigPath: path}

	out, err := run(t, g, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file created")
	assert.FileExists(t, path)

	_, err = run(t, g, "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	_, err = run(t, g, "init", "--force")
	assert.NoError(t, err)
}

func TestConfigVet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, config.WriteDefault(path, false))

		out, err := run(t, globalFor(t, path), "vet")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "defaultPort: 0\npackageManager: \"\"\n")

		_, err := run(t, globalFor(t, path), "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
		assert.Contains(t, err.Error(), "defaultPort")
	})

	t.Run("env override is checked", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "secret: fine\n")
		t.Setenv("NESTGEN_GLOBAL_PREFIX", "not a route")

		_, err := run(t, globalFor(t, path), "vet")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "globalPrefix")
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")

		_, err := run(t, globalFor(t, path), "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})
}

func TestConfigDiff(t *testing.T) {
	t.Run("no differences", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, config.WriteDefault(path, false))

		out, err := run(t, globalFor(t, path), "diff")
		require.NoError(t, err)
		assert.Contains(t, out, "No differences from defaults")
	})

	t.Run("changed value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data, err := config.DefaultYAML()
		require.NoError(t, err)
		changed := strings.Replace(string(data), "tokenTTL: 24h", "tokenTTL: 7d", 1)
		require.NoError(t, os.WriteFile(path, []byte(changed), 0o644))

		out, err := run(t, globalFor(t, path), "diff")
		require.NoError(t, err)
		assert.Contains(t, out, "tokenTTL")
		assert.Contains(t, out, "7d")
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")

		_, err := run(t, globalFor(t, path), "diff")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})
}
