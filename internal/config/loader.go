package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order.
var ConfigPaths = []string{
	"./.hwdoctor.yaml",               // project-specific config (highest priority)
	"~/.config/hwdoctor/config.yaml", // user config
	"/etc/hwdoctor/config.yaml",      // system config (lowest priority)
}

// Loader handles configuration loading with priority merging.
type Loader struct {
	configPaths []string
}

// NewLoader creates a config loader over the standard search paths.
func NewLoader() *Loader {
	return &Loader{configPaths: ConfigPaths}
}

// LoadConfig merges configuration sources in priority order: built-in
// defaults, then config files lowest to highest priority, then HWDOCTOR_
// environment variables. A custom path replaces the standard search.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		if err := l.loadFromFile(cfg, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Walk lowest priority first so later files override.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := l.loadFromFile(cfg, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load config from %s: %v\n", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - config path chosen by the user
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// applyEnvOverrides maps HWDOCTOR_* environment variables onto the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HWDOCTOR_OUTPUT_FORMAT"); v != "" {
		cfg.Output.DefaultFormat = v
	}
	if v := os.Getenv("HWDOCTOR_COLOR_MODE"); v != "" {
		cfg.Output.ColorMode = v
	}
	if v := os.Getenv("HWDOCTOR_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.Verbose = b
		}
	}
	if v := os.Getenv("HWDOCTOR_LOG_SOURCE"); v != "" {
		cfg.Logs.Source = v
	}
	if v := os.Getenv("HWDOCTOR_MAX_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Logs.MaxLines = n
		}
	}
	if v := os.Getenv("HWDOCTOR_COMMAND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Resolver.CommandTimeout = d
		}
	}
}

// GetConfigPaths returns the search paths with ~ expanded.
func GetConfigPaths() []string {
	paths := make([]string, len(ConfigPaths))
	for i, p := range ConfigPaths {
		paths[i] = expandPath(p)
	}
	return paths
}

// FindConfigFile returns the highest-priority config file that exists.
func FindConfigFile() (string, bool) {
	for _, p := range GetConfigPaths() {
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
