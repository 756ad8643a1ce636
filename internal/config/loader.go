package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// Environment variable prefix for nestgen configuration.
const envPrefix = "NESTGEN"

// Keys lists every configuration key in file order.
var Keys = []string{
	"packageManager",
	"installArgs",
	"peerDepsFlag",
	"schemaCommand",
	"sourceRoot",
	"secret",
	"tokenTTL",
	"globalPrefix",
	"defaultPort",
	"extraPackages",
	"commandTimeout",
	"log.timestamps",
}

// EnvName returns the environment variable bound to key, e.g.
// packageManager -> NESTGEN_PACKAGE_MANAGER, tokenTTL -> NESTGEN_TOKEN_TTL.
func EnvName(key string) string {
	var b strings.Builder
	b.WriteString(envPrefix)
	b.WriteByte('_')
	var prev rune
	for _, r := range key {
		switch {
		case r == '.':
			b.WriteByte('_')
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
		prev = r
	}
	return b.String()
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v    *viper.Viper
	file *viper.Viper
	path string
}

// NewLoader creates a new configuration loader with defaults and
// environment bindings installed.
func NewLoader() *Loader {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("packageManager", def.PackageManager)
	v.SetDefault("installArgs", def.InstallArgs)
	v.SetDefault("peerDepsFlag", def.PeerDepsFlag)
	v.SetDefault("schemaCommand", def.SchemaCommand)
	v.SetDefault("sourceRoot", def.SourceRoot)
	v.SetDefault("secret", def.Secret)
	v.SetDefault("tokenTTL", def.TokenTTL)
	v.SetDefault("globalPrefix", def.GlobalPrefix)
	v.SetDefault("defaultPort", def.DefaultPort)
	v.SetDefault("extraPackages", def.ExtraPackages)
	v.SetDefault("commandTimeout", def.CommandTimeout)
	v.SetDefault("log.timestamps", *def.Log.Timestamps)

	for _, key := range Keys {
		_ = v.BindEnv(key, EnvName(key))
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence
// over file values, which take precedence over defaults.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.path = expandedPath

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("reading config file: %v", err), expandedPath, "",
				"run 'nestgen config vet' for details")
		}
	} else {
		l.file = viper.New()
		l.file.SetConfigFile(expandedPath)
		l.file.SetConfigType("yaml")
		_ = l.file.ReadInConfig()
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("decoding config: %v", err), expandedPath, "", "")
	}

	return &cfg, nil
}

// Path returns the config file path used by the last Load.
func (l *Loader) Path() string {
	return l.path
}

// Source reports which layer supplied key after Load.
func (l *Loader) Source(key string) ConfigSource {
	if _, ok := os.LookupEnv(EnvName(key)); ok {
		return SourceEnv
	}
	if l.file != nil && l.file.IsSet(key) {
		return SourceConfig
	}
	return SourceDefault
}

// Resolved returns every key with its effective value and source, noting
// config file values shadowed by the environment.
func (l *Loader) Resolved() []ResolvedValue {
	values := make([]ResolvedValue, 0, len(Keys))
	for _, key := range Keys {
		rv := ResolvedValue{
			Key:      key,
			Value:    l.v.Get(key),
			Source:   l.Source(key),
			Shadowed: map[ConfigSource]any{},
		}
		if rv.Source == SourceEnv && l.file != nil && l.file.IsSet(key) {
			rv.Shadowed[SourceConfig] = l.file.Get(key)
		}
		values = append(values, rv)
	}
	return values
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
