package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad source", func(c *Config) { c.Logs.Source = "telepathy" }},
		{"zero max lines", func(c *Config) { c.Logs.MaxLines = 0 }},
		{"negative line length", func(c *Config) { c.Logs.MaxLineLength = -1 }},
		{"zero timeout", func(c *Config) { c.Resolver.CommandTimeout = 0 }},
		{"bad format", func(c *Config) { c.Output.DefaultFormat = "xml" }},
		{"bad color mode", func(c *Config) { c.Output.ColorMode = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: "1.0"
logs:
  source: journal
  max_lines: 123
output:
  default_format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Logs.Source != "journal" {
		t.Errorf("source = %q, want journal", cfg.Logs.Source)
	}
	if cfg.Logs.MaxLines != 123 {
		t.Errorf("max_lines = %d, want 123", cfg.Logs.MaxLines)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("default_format = %q, want json", cfg.Output.DefaultFormat)
	}
	// Untouched fields keep their defaults.
	if cfg.Logs.MaxLineLength != DefaultConfig().Logs.MaxLineLength {
		t.Errorf("max_line_length lost its default: %d", cfg.Logs.MaxLineLength)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logs: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().LoadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HWDOCTOR_OUTPUT_FORMAT", "markdown")
	t.Setenv("HWDOCTOR_VERBOSE", "true")
	t.Setenv("HWDOCTOR_COMMAND_TIMEOUT", "3s")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("default_format = %q, want markdown", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.Verbose {
		t.Error("verbose override not applied")
	}
	if cfg.Resolver.CommandTimeout != 3*time.Second {
		t.Errorf("command_timeout = %v, want 3s", cfg.Resolver.CommandTimeout)
	}
}
