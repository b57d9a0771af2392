package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Loader resolves Settings from defaults, an optional config file and
// bound flags. Environment variables are not consulted.
type Loader struct {
	path  string
	viper *viper.Viper
}

// NewLoader creates a loader. An empty path means "defaults and flags only".
func NewLoader(path string) *Loader {
	v := viper.New()
	SetDefaults(v)
	return &Loader{
		path:  path,
		viper: v,
	}
}

// Path returns the config file path, or "" when none was given.
func (l *Loader) Path() string {
	return l.path
}

// BindFlags binds config keys to flags. A flag only overrides the file or
// default when it was set on the command line.
func (l *Loader) BindFlags(fs *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("config: no flag --%s to bind to %s", name, key)
		}
		if err := l.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("config: binding --%s to %s: %w", name, key, err)
		}
	}
	return nil
}

// Load reads the config file (if any) and unmarshals the merged settings.
func (l *Loader) Load() (*Settings, error) {
	if l.path != "" {
		if _, err := os.Stat(l.path); errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigNotFoundError{Path: l.path}
		}

		l.viper.SetConfigFile(l.path)
		l.viper.SetConfigType("yaml")
		if err := l.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unknown keys are errors; a misspelled key would otherwise fall back
	// to its default without a trace.
	var s Settings
	if err := l.viper.Unmarshal(&s, func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	}); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &s, nil
}

// MarshalYAML renders settings the way they would appear in a config file.
func MarshalYAML(s *Settings) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return out, nil
}

// ConfigNotFoundError is returned when --config names a missing file.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// IsConfigNotFound returns true if the error is a ConfigNotFoundError
func IsConfigNotFound(err error) bool {
	var nf *ConfigNotFoundError
	return errors.As(err, &nf)
}
