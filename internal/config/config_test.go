package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestgen/cli/internal/deps"
	"github.com/nestgen/cli/internal/templates"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, []string{"install"}, cfg.InstallArgs)
	assert.Equal(t, "--legacy-peer-deps", cfg.PeerDepsFlag)
	assert.Equal(t, []string{"npx", "prisma", "init"}, cfg.SchemaCommand)
	assert.Equal(t, "src", cfg.SourceRoot)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestConfig_Timeout(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty", value: "", want: 0},
		{name: "zero", value: "0s", want: 0},
		{name: "minutes", value: "5m", want: 5 * time.Minute},
		{name: "garbage", value: "soon", wantErr: true},
		{name: "negative", value: "-1s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CommandTimeout: tt.value}
			got, err := cfg.Timeout()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Constants(t *testing.T) {
	t.Run("empty config keeps defaults", func(t *testing.T) {
		assert.Equal(t, templates.DefaultConstants(), (&Config{}).Constants())
	})

	t.Run("overrides apply", func(t *testing.T) {
		cfg := &Config{
			Secret:       "s3cr3t",
			TokenTTL:     "7d",
			GlobalPrefix: "api/v2",
			DefaultPort:  8080,
		}
		c := cfg.Constants()
		assert.Equal(t, "s3cr3t", c.Secret)
		assert.Equal(t, "7d", c.TokenTTL)
		assert.Equal(t, "api/v2", c.GlobalPrefix)
		assert.Equal(t, 8080, c.DefaultPort)
		assert.Equal(t, templates.DefaultConstants().Symbols, c.Symbols)
	})
}

func TestConfig_Commands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PackageManager = "pnpm"
	cfg.InstallArgs = []string{"add"}

	install := cfg.InstallCommand()
	assert.Equal(t, "pnpm", install.Name)
	assert.Equal(t, []string{"add"}, install.Args)

	install.Args[0] = "mutated"
	assert.Equal(t, []string{"add"}, cfg.InstallArgs)

	schema := cfg.SchemaInitCommand()
	assert.Equal(t, "npx", schema.Name)
	assert.Equal(t, []string{"prisma", "init"}, schema.Args)
}

func TestConfig_DependencyBuilder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExtraPackages = []string{"helmet"}

	specs, err := cfg.DependencyBuilder().Build(deps.Resolve("latest"))
	require.NoError(t, err)

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "helmet")
	assert.Contains(t, names, "@nestjs/jwt")
}
