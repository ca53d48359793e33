package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/thoreinstein/xrpick/internal/errors"
	"github.com/thoreinstein/xrpick/internal/paths"
	"github.com/thoreinstein/xrpick/pkg/fileutil"
)

// EnvPrefix is the prefix of every environment variable viper consults.
const EnvPrefix = "XRPICK"

// ConfigDirEnv overrides the directory config.yaml is looked up in.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// Configuration keys.
const (
	KeyVersion    = "version"
	KeyStateFile  = "state_file"
	KeyListFormat = "list_format"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version    int    `mapstructure:"version" yaml:"version"`
	StateFile  string `mapstructure:"state_file" yaml:"state_file"`
	ListFormat string `mapstructure:"list_format" yaml:"list_format"`
}

// Keys returns every supported key in display order.
func Keys() []string {
	return []string{KeyVersion, KeyStateFile, KeyListFormat}
}

// Dir returns the directory holding config.yaml.
func Dir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return paths.AppConfigDir()
}

// DefaultPath returns the config file written by Set.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:    1,
		StateFile:  paths.DefaultStateFile(),
		ListFormat: string(FormatTable),
	}
}

// Init resets viper and registers defaults, search paths and environment
// bindings. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault(KeyVersion, d.Version)
	viper.SetDefault(KeyStateFile, d.StateFile)
	viper.SetDefault(KeyListFormat, d.ListFormat)
}

// Load reads the configuration file. With an empty path the default
// locations are searched and a missing file yields defaults; an explicit
// path must exist. The result is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}
	return &cfg, nil
}

// Set validates value for key and persists it to the config file at path,
// keeping the other keys' current values.
func Set(path, key, value string) error {
	return SetFs(afero.NewOsFs(), path, key, value)
}

// SetFs is Set on an arbitrary filesystem.
func SetFs(fsys afero.Fs, path, key, value string) error {
	cfg := Current()
	switch key {
	case KeyVersion:
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Mark(errors.Newf("version %q is not a number", value), ErrInvalidValue)
		}
		cfg.Version = v
	case KeyStateFile:
		cfg.StateFile = value
	case KeyListFormat:
		cfg.ListFormat = strings.ToLower(value)
	default:
		return errors.Mark(errors.Newf("unknown configuration key %q (valid: %s)", key, strings.Join(Keys(), ", ")), ErrUnknownKey)
	}
	if errs := Validate(cfg); len(errs) > 0 {
		return errs[0]
	}

	if err := fileutil.WriteYAML(fsys, path, cfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	viper.Set(KeyVersion, cfg.Version)
	viper.Set(KeyStateFile, cfg.StateFile)
	viper.Set(KeyListFormat, cfg.ListFormat)
	return nil
}

// Current returns the configuration as viper currently resolves it.
func Current() *Config {
	return &Config{
		Version:    viper.GetInt(KeyVersion),
		StateFile:  viper.GetString(KeyStateFile),
		ListFormat: viper.GetString(KeyListFormat),
	}
}
