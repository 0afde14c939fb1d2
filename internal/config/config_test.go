package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RegistryURL != DefaultRegistryURL {
		t.Errorf("RegistryURL = %q, want %q", cfg.RegistryURL, DefaultRegistryURL)
	}
	if cfg.Package != "@biomejs/biome" {
		t.Errorf("Package = %q, want %q", cfg.Package, "@biomejs/biome")
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `registry_url: https://registry.example.com
package: "@scope/tool"
name_prefix: tool-repro
http_timeout: 5s
no_color: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RegistryURL != "https://registry.example.com" {
		t.Errorf("RegistryURL = %q", cfg.RegistryURL)
	}
	if cfg.Package != "@scope/tool" {
		t.Errorf("Package = %q", cfg.Package)
	}
	if cfg.NamePrefix != "tool-repro" {
		t.Errorf("NamePrefix = %q", cfg.NamePrefix)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be true")
	}
	// Unset keys keep their defaults
	if cfg.CommitMessage != DefaultCommitMessage {
		t.Errorf("CommitMessage = %q, want default", cfg.CommitMessage)
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("CREATE_REPRO_PACKAGE", "@env/override")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Package != "@env/override" {
		t.Errorf("Package = %q, want %q", cfg.Package, "@env/override")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("package: [unterminated\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid YAML")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Type != ConfigInvalid {
		t.Errorf("Load() error = %v, want ConfigInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:      "empty package",
			mutate:    func(c *Config) { c.Package = " " },
			wantField: KeyPackage,
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.HTTPTimeout = 0 },
			wantField: KeyHTTPTimeout,
		},
		{
			name:      "relative registry URL",
			mutate:    func(c *Config) { c.RegistryURL = "registry.npmjs.org" },
			wantField: KeyRegistryURL,
		},
		{
			name:      "unsupported scheme",
			mutate:    func(c *Config) { c.RegistryURL = "ftp://registry.npmjs.org" },
			wantField: KeyRegistryURL,
		},
		{
			name:      "empty commit message",
			mutate:    func(c *Config) { c.CommitMessage = "" },
			wantField: KeyCommitMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if cfgErr.Type != ConfigValidationFailed {
				t.Errorf("Type = %v, want ConfigValidationFailed", cfgErr.Type)
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := Set(path, KeyNamePrefix, "my-prefix"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := Set(path, KeyHTTPTimeout, "12s"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := Get(path, KeyNamePrefix)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "my-prefix" {
		t.Errorf("Get(name_prefix) = %q, want %q", got, "my-prefix")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NamePrefix != "my-prefix" {
		t.Errorf("NamePrefix = %q, want %q", cfg.NamePrefix, "my-prefix")
	}
	if cfg.HTTPTimeout != 12*time.Second {
		t.Errorf("HTTPTimeout = %v, want 12s", cfg.HTTPTimeout)
	}
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := Set(path, "nope", "value")
	if err == nil {
		t.Fatal("Set() expected error for unknown key")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("config file should not be created for an unknown key")
	}
}

func TestSet_RejectsInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Set(path, KeyRegistryURL, "not a url"); err == nil {
		t.Fatal("Set() expected validation error")
	}
}

func TestGet_UnknownKey(t *testing.T) {
	if _, err := Get(filepath.Join(t.TempDir(), "config.yaml"), "nope"); err == nil {
		t.Error("Get() expected error for unknown key")
	}
}

func TestToYAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HTTPTimeout = 1500 * time.Millisecond

	data, err := ToYAML(cfg)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"registry_url: https://registry.npmjs.org",
		"@biomejs/biome",
		"http_timeout: 1.5s",
		"commit_message: Initial commit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToYAML() missing %q in:\n%s", want, out)
		}
	}
}

func TestIsKey(t *testing.T) {
	for _, key := range Keys() {
		if !IsKey(key) {
			t.Errorf("IsKey(%q) = false", key)
		}
	}
	if IsKey("unknown") {
		t.Error("IsKey(unknown) = true")
	}
}
