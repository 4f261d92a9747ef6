package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/carematch/resume-matcher/internal/logger"
	"github.com/carematch/resume-matcher/internal/taxonomy"
)

// newLogger builds the command logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(logJSON, logDebug)
}

// loadTaxonomy returns the override taxonomy when --taxonomy is set, the
// built-in dictionaries otherwise.
func loadTaxonomy() (*taxonomy.Taxonomy, error) {
	if taxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(taxonomyFile)
}

// readJSONFile unmarshals a JSON file into v.
func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSONOutput writes v as indented JSON to the given path, or to stdout
// when the path is empty.
func writeJSONOutput(path string, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
