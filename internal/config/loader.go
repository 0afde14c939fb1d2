package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/tacogips/create-repro/internal/debug"
)

// newViper returns a viper instance bound to path, the defaults and the
// CREATE_REPRO_* environment variables.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault(KeyRegistryURL, d.RegistryURL)
	v.SetDefault(KeyPackage, d.Package)
	v.SetDefault(KeyNamePrefix, d.NamePrefix)
	v.SetDefault(KeyTemplateDir, d.TemplateDir)
	v.SetDefault(KeyHTTPTimeout, d.HTTPTimeout)
	v.SetDefault(KeyCommitMessage, d.CommitMessage)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyDebug, d.Debug)
	return v
}

// readInto reads the file behind v. A missing file is not an error.
func readInto(v *viper.Viper, path string) error {
	err := v.ReadInConfig()
	if err == nil {
		debug.Debug("[config] Loaded %s", path)
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
		debug.Debug("[config] No config file at %s, using defaults", path)
		return nil
	}
	return NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
}

// Load loads configuration from path, layered over the defaults and
// overridden by CREATE_REPRO_* environment variables. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	v := newViper(path)
	if err := readInto(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	if err := Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}

	debug.DebugJSON("[config] Effective configuration", cfg)
	return &cfg, nil
}

// Validate validates the configuration.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Package) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", KeyPackage, "package cannot be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", KeyHTTPTimeout, "timeout must be positive")
	}
	u, err := url.Parse(cfg.RegistryURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", KeyRegistryURL, "registry URL must be an absolute http(s) URL")
	}
	if strings.TrimSpace(cfg.CommitMessage) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", KeyCommitMessage, "commit message cannot be empty")
	}
	return nil
}

// Get returns the effective value of key as a string.
func Get(path, key string) (string, error) {
	if !IsKey(key) {
		return "", NewConfigErrorWithField(ConfigValidationFailed, path, key, "unknown configuration key")
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	v := newViper(path)
	if err := readInto(v, path); err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// Set writes key=value to the configuration file at path, creating the file
// and its parent directory when needed. The resulting file must still validate.
func Set(path, key, value string) error {
	if !IsKey(key) {
		return NewConfigErrorWithField(ConfigValidationFailed, path, key, "unknown configuration key")
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	v := newViper(path)
	if err := readInto(v, path); err != nil {
		return err
	}
	v.Set(key, value)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, fmt.Sprintf("invalid value for %s", key), err)
	}
	if err := Validate(&cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, path, "failed to create configuration directory", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, path, "failed to write configuration file", err)
	}
	return nil
}

// yamlView is the serialized form of Config used by "config show".
type yamlView struct {
	RegistryURL   string `yaml:"registry_url"`
	Package       string `yaml:"package"`
	NamePrefix    string `yaml:"name_prefix"`
	TemplateDir   string `yaml:"template_dir"`
	HTTPTimeout   string `yaml:"http_timeout"`
	CommitMessage string `yaml:"commit_message"`
	NoColor       bool   `yaml:"no_color"`
	Debug         bool   `yaml:"debug"`
}

// MarshalYAML renders the configuration as YAML with durations in
// Go duration syntax.
func (c *Config) MarshalYAML() (interface{}, error) {
	return yamlView{
		RegistryURL:   c.RegistryURL,
		Package:       c.Package,
		NamePrefix:    c.NamePrefix,
		TemplateDir:   c.TemplateDir,
		HTTPTimeout:   c.HTTPTimeout.Round(time.Millisecond).String(),
		CommitMessage: c.CommitMessage,
		NoColor:       c.NoColor,
		Debug:         c.Debug,
	}, nil
}

// ToYAML serializes cfg as YAML.
func ToYAML(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
