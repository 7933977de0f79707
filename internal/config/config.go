// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default file locations and settings used when neither flags nor a config
// file override them.
const (
	DefaultFullrunFile     = "results_fullrun_Rsq.json"
	DefaultDerivativesFile = "results_derivatives.json"
	DefaultOutputDir       = "results"
	DefaultCombinedFile    = "results_combined.json"
	DefaultTablesFile      = "results_latex_table.txt"
	DefaultMethodSuffix    = "_deriv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Fullrun     string `json:"fullrun,omitempty"`     // Path to full-spectrum results JSON
	Derivatives string `json:"derivatives,omitempty"` // Path to derivative-spectra results JSON
	OutDir      string `json:"out_dir,omitempty"`     // Directory for combined JSON and LaTeX outputs

	// Behavior
	MethodSuffix string `json:"method_suffix,omitempty"` // Suffix appended to derivative method names
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed progress information
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
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
// Note: This doesn't check that the input files exist since the pipeline
// treats a missing input as an empty result set.
func (c *Config) Validate() error {
	// Combining a file with itself doubles every method
	if c.Fullrun != "" && c.Fullrun == c.Derivatives {
		return fmt.Errorf("config error: 'fullrun' and 'derivatives' must be different files")
	}

	// The output directory is created on demand, but an existing regular
	// file at that path would make every write fail later
	if c.OutDir != "" {
		if info, err := os.Stat(c.OutDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'out_dir' is not a directory: %s", c.OutDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Fullrun == "" {
		result.Fullrun = defaults.Fullrun
	}
	if result.Derivatives == "" {
		result.Derivatives = defaults.Derivatives
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.MethodSuffix == "" {
		result.MethodSuffix = defaults.MethodSuffix
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration used when nothing else is specified.
func Defaults() Config {
	return Config{
		Fullrun:      DefaultFullrunFile,
		Derivatives:  DefaultDerivativesFile,
		OutDir:       DefaultOutputDir,
		MethodSuffix: DefaultMethodSuffix,
	}
}
