// Package config loads hwdoctor configuration from YAML files with
// priority merging and environment overrides.
package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Logs     LogsConfig     `yaml:"logs" json:"logs"`
	Resolver ResolverConfig `yaml:"resolver" json:"resolver"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	Scan     ScanConfig     `yaml:"scan" json:"scan"`
}

// LogsConfig configures log acquisition and clustering.
type LogsConfig struct {
	Source        string `yaml:"source" json:"source"`                   // auto|dmesg|journal|file
	MaxLines      int    `yaml:"max_lines" json:"max_lines"`             // cap on lines read
	MaxLineLength int    `yaml:"max_line_length" json:"max_line_length"` // scanner buffer bound
}

// ResolverConfig configures driver resolution sources.
type ResolverConfig struct {
	CommandTimeout time.Duration `yaml:"command_timeout" json:"command_timeout"` // per external command
	SysfsRoot      string        `yaml:"sysfs_root" json:"sysfs_root"`
	BusRoot        string        `yaml:"bus_root" json:"bus_root"`
	ModulesPath    string        `yaml:"modules_path" json:"modules_path"`
}

// OutputConfig configures output formatting and display.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
}

// ScanConfig configures the device scan.
type ScanConfig struct {
	FullDevices bool `yaml:"full_devices" json:"full_devices"` // show every sysfs class
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Logs: LogsConfig{
			Source:        "auto",
			MaxLines:      50000,
			MaxLineLength: 64 * 1024,
		},
		Resolver: ResolverConfig{
			CommandTimeout: 10 * time.Second,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Scan: ScanConfig{
			FullDevices: false,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logs.Source {
	case "auto", "dmesg", "journal", "file":
	default:
		return fmt.Errorf("invalid logs.source %q (use auto, dmesg, journal, or file)", c.Logs.Source)
	}
	if c.Logs.MaxLines <= 0 {
		return fmt.Errorf("logs.max_lines must be positive, got %d", c.Logs.MaxLines)
	}
	if c.Logs.MaxLineLength <= 0 {
		return fmt.Errorf("logs.max_line_length must be positive, got %d", c.Logs.MaxLineLength)
	}
	if c.Resolver.CommandTimeout <= 0 {
		return fmt.Errorf("resolver.command_timeout must be positive, got %v", c.Resolver.CommandTimeout)
	}
	switch c.Output.DefaultFormat {
	case "text", "json", "markdown", "csv":
	default:
		return fmt.Errorf("invalid output.default_format %q (use text, json, markdown, or csv)", c.Output.DefaultFormat)
	}
	switch c.Output.ColorMode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid output.color_mode %q (use auto, always, or never)", c.Output.ColorMode)
	}
	return nil
}

// SampleConfig returns a commented sample configuration file.
func SampleConfig() string {
	return `# hwdoctor configuration
version: "1.0"

logs:
  # Log source: auto (dmesg, then journalctl, then /var/log/kern.log),
  # dmesg, journal, or file.
  source: auto
  max_lines: 50000
  max_line_length: 65536

resolver:
  # Timeout for each external inspection command (lspci).
  command_timeout: 10s

output:
  # Default output format: text, json, markdown, or csv.
  default_format: text
  # Color mode: auto, always, or never.
  color_mode: auto
  verbose: false

scan:
  # Show every sysfs class instead of the user-relevant subset.
  full_devices: false
`
}

// MinimalSampleConfig returns a compact sample with only the essentials.
func MinimalSampleConfig() string {
	return `version: "1.0"
logs:
  source: auto
output:
  default_format: text
`
}
