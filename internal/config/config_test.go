package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"strong_match_threshold": 85,
		"min_match_percentage": 50,
		"limit": 10,
		"workers": 4,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 85.0, cfg.StrongMatchThreshold)
	assert.Equal(t, 50.0, cfg.MinMatchPercentage)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	cfg := Config{StrongMatchThreshold: 150}
	assert.Error(t, cfg.Validate())

	cfg = Config{StrongMatchThreshold: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeLimit(t *testing.T) {
	cfg := Config{Limit: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_TaxonomyFileMissing(t *testing.T) {
	cfg := Config{Taxonomy: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_TaxonomyFileExists(t *testing.T) {
	path := writeConfigFile(t, `{}`)
	cfg := Config{Taxonomy: path}
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MATCHER_STRONG_MATCH_THRESHOLD", "90")
	t.Setenv("MATCHER_WORKERS", "8")
	t.Setenv("MATCHER_VERBOSE", "true")
	t.Setenv("MATCHER_LIMIT", "not a number")

	cfg := FromEnv()

	assert.Equal(t, 90.0, cfg.StrongMatchThreshold)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.Zero(t, cfg.Limit)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{StrongMatchThreshold: 85}
	defaults := Config{StrongMatchThreshold: 80, Workers: 4, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 85.0, merged.StrongMatchThreshold)
	assert.Equal(t, 4, merged.Workers)
	assert.True(t, merged.Verbose)
}
