package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/saylorsolutions/passgen/pkg/passgen"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "passgen"
	configFileName = appName + ".yaml"
	stateFileName  = "state.bin"
	envPrefix      = "PASSGEN"
)

// Config is the persisted configuration of the passgen tool.
type Config struct {
	StateFile      string            `mapstructure:"state_file" yaml:"state_file"`
	LogLevel       string            `mapstructure:"log_level" yaml:"log_level"`
	RequirePersist bool              `mapstructure:"require_persist" yaml:"require_persist"`
	Options        passgen.OptionSet `mapstructure:"options" yaml:"options"`
	Presets        passgen.Presets   `mapstructure:"presets" yaml:"presets,omitempty"`

	path string
}

// Path is the file the Config was loaded from, or will be written to.
func (c *Config) Path() string {
	return c.path
}

// Dir returns the per-user directory that holds the config and state files.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

func defaults(dir string) map[string]any {
	opts := passgen.DefaultOptions()
	values := map[string]any{
		"state_file":      filepath.Join(dir, stateFileName),
		"log_level":       "warn",
		"require_persist": false,
		"options.length":  opts.Length,
	}
	for _, class := range opts.Classes() {
		prefix := "options." + class.Name + "."
		values[prefix+"enabled"] = class.Option.Enabled
		values[prefix+"chars"] = class.Option.Chars
		values[prefix+"min"] = class.Option.Min
	}
	return values
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"state-file":      "state_file",
	"log-level":       "log_level",
	"require-persist": "require_persist",
}

// Load reads the config file, layering defaults, the file, PASSGEN_* environment variables, and flags, in increasing precedence.
// A missing config file isn't an error. If path is empty, the file is looked up in Dir.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v := viper.New()
	for key, value := range defaults(dir) {
		v.SetDefault(key, value)
	}

	configPath := filepath.Join(dir, configFileName)
	if len(path) > 0 {
		configPath = path
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if c.Presets == nil {
		c.Presets = passgen.Presets{}
	}
	c.path = configPath
	return c, nil
}

// Write saves the Config to its Path as YAML, creating the directory if needed.
func Write(c *Config) error {
	if len(c.path) == 0 {
		return errors.New("config has no file path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}
	return os.WriteFile(c.path, data, 0600)
}

// PresetName normalizes a preset name. Config keys are case-insensitive, so names are stored in lower case.
func PresetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
