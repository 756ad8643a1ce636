package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/nestgen/cli/internal/errors"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"packageManager", "NESTGEN_PACKAGE_MANAGER"},
		{"tokenTTL", "NESTGEN_TOKEN_TTL"},
		{"secret", "NESTGEN_SECRET"},
		{"log.timestamps", "NESTGEN_LOG_TIMESTAMPS"},
		{"commandTimeout", "NESTGEN_COMMAND_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvName(tt.key))
		})
	}
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
packageManager: pnpm
installArgs: [add]
sourceRoot: app
secret: from-file
tokenTTL: 7d
defaultPort: 8080
extraPackages: [helmet]
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "pnpm", cfg.PackageManager)
		assert.Equal(t, []string{"add"}, cfg.InstallArgs)
		assert.Equal(t, "app", cfg.SourceRoot)
		assert.Equal(t, "from-file", cfg.Secret)
		assert.Equal(t, "7d", cfg.TokenTTL)
		assert.Equal(t, 8080, cfg.DefaultPort)
		assert.Equal(t, []string{"helmet"}, cfg.ExtraPackages)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, configFile, loader.Path())
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		def := DefaultConfig()
		assert.Equal(t, def.PackageManager, cfg.PackageManager)
		assert.Equal(t, def.SchemaCommand, cfg.SchemaCommand)
		assert.Equal(t, def.Secret, cfg.Secret)
		assert.Equal(t, SourceDefault, loader.Source("packageManager"))
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("NESTGEN_PACKAGE_MANAGER", "yarn")
		t.Setenv("NESTGEN_SECRET", "env-secret")
		t.Setenv("NESTGEN_DEFAULT_PORT", "4000")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "yarn", cfg.PackageManager)
		assert.Equal(t, "env-secret", cfg.Secret)
		assert.Equal(t, 4000, cfg.DefaultPort)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("NESTGEN_SECRET", "env-secret")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("secret: file-secret\nsourceRoot: app\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.Secret)
		assert.Equal(t, SourceEnv, loader.Source("secret"))
		assert.Equal(t, SourceConfig, loader.Source("sourceRoot"))

		var secret ResolvedValue
		for _, rv := range loader.Resolved() {
			if rv.Key == "secret" {
				secret = rv
			}
		}
		assert.Equal(t, "env-secret", secret.Value)
		assert.Equal(t, "file-secret", secret.Shadowed[SourceConfig])
	})

	t.Run("malformed file is a validation error", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("secret: [unterminated\n"), 0o644))

		_, err := NewLoader().Load(configFile)

		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})
}

func TestLoader_ResolvedCoversEveryKey(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	resolved := loader.Resolved()
	require.Len(t, resolved, len(Keys))
	for i, rv := range resolved {
		assert.Equal(t, Keys[i], rv.Key)
	}
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	exists, err := ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(configFile, []byte("secret: x\n"), 0o644))

	exists, err = ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.True(t, exists)
}
