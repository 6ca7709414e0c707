// Package config resolves swatch defaults from a config file, SWATCH_*
// environment variables and command-line flags using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/swatch/pkg/swatch"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Name is the config file base name and the environment prefix.
	Name = "swatch"

	KeyFormat          = "format"
	KeyLightnessFactor = "lightness_factor"
	KeyMaxLightness    = "max_lightness"
	KeyMinLightness    = "min_lightness"
	KeyScale           = "scale"
	KeySteps           = "steps"
	KeyVariant         = "variant"
	KeyOutput          = "output"
	KeyName            = "name"
)

// DefaultOutput and DefaultName are used when nothing else sets them.
const (
	DefaultOutput = "text"
	DefaultName   = "primary"
)

// EnvKeyReplacer maps config keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Config is the resolved configuration of a generate run.
type Config struct {
	Options swatch.Options
	Output  string
	Name    string
	File    string // config file used, empty if none
}

// Loader reads configuration through its own viper instance.
type Loader struct {
	v           *viper.Viper
	searchPaths []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSearchPaths replaces the directories searched for swatch.{yaml,toml,json}.
func WithSearchPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.searchPaths = paths }
}

// DefaultSearchPaths returns the working directory and the user config directory.
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, Name))
	}
	return paths
}

// New creates a Loader on fs with defaults and environment bindings in place.
func New(fs afero.Fs, opts ...LoaderOption) *Loader {
	l := &Loader{
		v:           viper.New(),
		searchPaths: DefaultSearchPaths(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.v.SetFs(fs)
	l.v.SetEnvPrefix(Name)
	l.v.SetEnvKeyReplacer(EnvKeyReplacer)

	defaults := swatch.DefaultOptions()
	for key, value := range map[string]any{
		KeyFormat:          string(defaults.Format),
		KeyLightnessFactor: defaults.LightnessFactor,
		KeyMaxLightness:    defaults.MaxLightness,
		KeyMinLightness:    defaults.MinLightness,
		KeyScale:           string(defaults.Scale),
		KeySteps:           defaults.Steps,
		KeyVariant:         string(defaults.Variant),
		KeyOutput:          DefaultOutput,
		KeyName:            DefaultName,
	} {
		l.v.SetDefault(key, value)
		_ = l.v.BindEnv(key)
	}

	return l
}

// BindFlags binds command-line flags to config keys. flags maps config key
// to flag name; flags that are not defined on the set are skipped.
func (l *Loader) BindFlags(set *pflag.FlagSet, flags map[string]string) error {
	for key, name := range flags {
		f := set.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load resolves the configuration. An explicit path must exist; otherwise the
// search paths are tried and a missing file is not an error.
func (l *Loader) Load(path string) (Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName(Name)
		for _, p := range l.searchPaths {
			l.v.AddConfigPath(p)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		Options: swatch.Options{
			Format:          swatch.Format(strings.ToLower(l.v.GetString(KeyFormat))),
			LightnessFactor: l.v.GetFloat64(KeyLightnessFactor),
			MaxLightness:    l.v.GetFloat64(KeyMaxLightness),
			MinLightness:    l.v.GetFloat64(KeyMinLightness),
			Scale:           swatch.Scale(strings.ToLower(l.v.GetString(KeyScale))),
			Steps:           l.v.GetInt(KeySteps),
			Variant:         swatch.Variant(strings.ToLower(l.v.GetString(KeyVariant))),
		},
		Output: strings.ToLower(l.v.GetString(KeyOutput)),
		Name:   l.v.GetString(KeyName),
		File:   l.v.ConfigFileUsed(),
	}

	if err := cfg.Options.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
