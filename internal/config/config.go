package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/venvlink/venvlink/internal/branding"
	"github.com/venvlink/venvlink/internal/paths"
	"github.com/venvlink/venvlink/internal/venv"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. Each is also readable from <PREFIX>_<KEY> in the environment.
const (
	KeyPrefix  = "prefix"
	KeyUser    = "user"
	KeyPython  = "python"
	KeyPipArgs = "pip_args"
)

// Settings is the resolved configuration.
type Settings struct {
	Prefix  string
	User    bool
	Python  string
	PipArgs []string
	// File is the config file that was read, or empty if none existed.
	File string
}

// Dir returns the venvlink config directory under home (~/.venvlink/).
func Dir(home string) string {
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the config file path. The <PREFIX>_CONFIG environment
// variable overrides the default ~/.venvlink/config.yaml.
func FilePath(home string) string {
	if v := os.Getenv(branding.EnvVar("config")); v != "" {
		return paths.ExpandUser(v, home)
	}
	return filepath.Join(Dir(home), fileName+"."+fileType)
}

// Loader layers flags, environment, config file and defaults.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader returns a Loader reading the config file at path.
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyPrefix, paths.DefaultPrefix)
	v.SetDefault(KeyUser, false)
	v.SetDefault(KeyPython, venv.DefaultPython)
	v.SetDefault(KeyPipArgs, []string{})

	return &Loader{v: v, path: path}
}

// BindFlags binds the named flags in fs to the settings of the same key.
// Flags that were not set on the command line fall through to the lower
// layers.
func (l *Loader) BindFlags(fs *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		flag := fs.Lookup(key)
		if flag == nil {
			return fmt.Errorf("binding flag %q: no such flag", key)
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %q: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file, if present, and returns the merged settings.
// An invalid config file is an error; a missing one is not.
func (l *Loader) Load() (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(l.path)
	switch {
	case err == nil:
		result, err := Validate(data)
		if err != nil {
			return nil, fmt.Errorf("validating config file %s: %w", l.path, err)
		}
		if !result.Valid {
			return nil, &InvalidError{Path: l.path, Issues: result.Issues}
		}
		if err := l.v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
		}
		settings.File = l.path
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}

	settings.Prefix = l.v.GetString(KeyPrefix)
	settings.User = l.v.GetBool(KeyUser)
	settings.Python = l.v.GetString(KeyPython)
	settings.PipArgs = l.v.GetStringSlice(KeyPipArgs)
	return settings, nil
}
