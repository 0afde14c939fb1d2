package config

import "time"

// Config represents the create-repro user configuration.
type Config struct {
	// RegistryURL is the base URL of the npm-compatible registry queried for versions.
	RegistryURL string `mapstructure:"registry_url"`
	// Package is the dependency whose version is patched into the manifest.
	Package string `mapstructure:"package"`
	// NamePrefix is the prefix of the default project name.
	NamePrefix string `mapstructure:"name_prefix"`
	// TemplateDir overrides the bundled template with a directory on disk.
	TemplateDir string `mapstructure:"template_dir"`
	// HTTPTimeout bounds the version lookup request.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// CommitMessage is the message of the initial commit.
	CommitMessage string `mapstructure:"commit_message"`
	// NoColor disables colored terminal output.
	NoColor bool `mapstructure:"no_color"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug"`
}

// Configuration keys.
const (
	KeyRegistryURL   = "registry_url"
	KeyPackage       = "package"
	KeyNamePrefix    = "name_prefix"
	KeyTemplateDir   = "template_dir"
	KeyHTTPTimeout   = "http_timeout"
	KeyCommitMessage = "commit_message"
	KeyNoColor       = "no_color"
	KeyDebug         = "debug"
)

// Keys returns every recognized configuration key in display order.
func Keys() []string {
	return []string{
		KeyRegistryURL,
		KeyPackage,
		KeyNamePrefix,
		KeyTemplateDir,
		KeyHTTPTimeout,
		KeyCommitMessage,
		KeyNoColor,
		KeyDebug,
	}
}

// IsKey reports whether key is a recognized configuration key.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
