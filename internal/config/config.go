// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags. The one exception is APIKey, which must be present from some
// source before any generation work begins.
type Config struct {
	// Credentials
	APIKey string `json:"api_key,omitempty"` // Gemini API key

	// Generation defaults
	Model     string `json:"model,omitempty"`     // Model identifier
	Name      string `json:"name,omitempty"`      // Candidate display name
	Seniority string `json:"seniority,omitempty"` // Default target seniority
	Industry  string `json:"industry,omitempty"`  // Default industry context

	// Output
	OutputDir string `json:"output_dir,omitempty"` // Directory for rendered documents

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for the required API key since that is resolved
// after merging config, flags and environment.
func (c *Config) Validate() error {
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: output directory not found: %s", c.OutputDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output path is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Seniority == "" {
		result.Seniority = defaults.Seniority
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
