// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags. Flags set explicitly on the command line win over
// config file values.
type Config struct {
	// Paths
	Taxonomy string `json:"taxonomy,omitempty"` // Path to a taxonomy override JSON file

	// Scoring
	StrongMatchThreshold float64 `json:"strong_match_threshold,omitempty"` // Percentage at or above which a match is strong (0-100)
	MinMatchPercentage   float64 `json:"min_match_percentage,omitempty"`   // Ranking floor (0-100)
	Limit                int     `json:"limit,omitempty"`                  // Maximum ranked results (0 = unlimited)
	Workers              int     `json:"workers,omitempty"`                // Batch scoring worker pool size (0 = number of CPUs)

	// Behavior
	Verbose bool `json:"verbose,omitempty"`  // Print formatted summaries
	LogJSON bool `json:"log_json,omitempty"` // Emit logs as JSON
	Debug   bool `json:"debug,omitempty"`    // Enable debug logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv returns a Config built from MATCHER_* environment variables,
// typically populated from a .env file. Unset and malformed variables leave
// their field at the zero value.
func FromEnv() Config {
	var cfg Config
	cfg.Taxonomy = os.Getenv("MATCHER_TAXONOMY")
	cfg.StrongMatchThreshold = envFloat("MATCHER_STRONG_MATCH_THRESHOLD")
	cfg.MinMatchPercentage = envFloat("MATCHER_MIN_MATCH_PERCENTAGE")
	cfg.Limit = envInt("MATCHER_LIMIT")
	cfg.Workers = envInt("MATCHER_WORKERS")
	cfg.Verbose = envBool("MATCHER_VERBOSE")
	cfg.LogJSON = envBool("MATCHER_LOG_JSON")
	cfg.Debug = envBool("MATCHER_DEBUG")
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.StrongMatchThreshold < 0 || c.StrongMatchThreshold > 100 {
		return fmt.Errorf("config error: 'strong_match_threshold' must be between 0 and 100")
	}
	if c.MinMatchPercentage < 0 || c.MinMatchPercentage > 100 {
		return fmt.Errorf("config error: 'min_match_percentage' must be between 0 and 100")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to layer a config file over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.StrongMatchThreshold == 0 {
		result.StrongMatchThreshold = defaults.StrongMatchThreshold
	}
	if result.MinMatchPercentage == 0 {
		result.MinMatchPercentage = defaults.MinMatchPercentage
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.LogJSON {
		result.LogJSON = defaults.LogJSON
	}
	if !result.Debug {
		result.Debug = defaults.Debug
	}

	return result
}

func envFloat(key string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func envInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}
