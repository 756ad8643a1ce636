package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv("NESTGEN_CONFIG", "/env/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})

	require.NoError(t, err)
	assert.Equal(t, "/flag/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
	assert.Contains(t, result.Shadowed, SourceDefault)
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv("NESTGEN_CONFIG", "/env/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})

	require.NoError(t, err)
	assert.Equal(t, "/env/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv("NESTGEN_CONFIG", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".nestgen", "config.yaml"), result.ConfigPath)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestOverride(t *testing.T) {
	values := []ResolvedValue{
		{Key: "secret", Value: "from-file", Source: SourceConfig},
	}

	values = Override(values, "secret", "from-flag")
	require.Len(t, values, 1)
	assert.Equal(t, "from-flag", values[0].Value)
	assert.Equal(t, SourceFlag, values[0].Source)
	assert.Equal(t, "from-file", values[0].Shadowed[SourceConfig])

	values = Override(values, "packageManager", "pnpm")
	require.Len(t, values, 2)
	assert.Equal(t, "packageManager", values[1].Key)
	assert.Equal(t, SourceFlag, values[1].Source)
}
