package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultRegistryURL is the public npm registry.
	DefaultRegistryURL = "https://registry.npmjs.org"
	// DefaultPackage is the dependency pinned by the bundled template.
	DefaultPackage = "@biomejs/biome"
	// DefaultNamePrefix is the prefix of generated project names.
	DefaultNamePrefix = "biome-repro"
	// DefaultHTTPTimeout bounds the registry lookup.
	DefaultHTTPTimeout = 30 * time.Second
	// DefaultCommitMessage is the message of the initial commit.
	DefaultCommitMessage = "Initial commit"

	// EnvPrefix prefixes environment variable overrides (CREATE_REPRO_PACKAGE, ...).
	EnvPrefix = "CREATE_REPRO"

	appDirName = "create-repro"
	fileName   = "config.yaml"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		RegistryURL:   DefaultRegistryURL,
		Package:       DefaultPackage,
		NamePrefix:    DefaultNamePrefix,
		TemplateDir:   "",
		HTTPTimeout:   DefaultHTTPTimeout,
		CommitMessage: DefaultCommitMessage,
		NoColor:       false,
		Debug:         false,
	}
}

// DefaultConfigPath returns the default configuration file path
// ($XDG_CONFIG_HOME/create-repro/config.yaml on Linux).
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, appDirName, fileName)
}
