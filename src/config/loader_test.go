package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, "a11y-lint", cfg.Agent.Name)
	assert.Equal(t, 4, cfg.Concurrency.MaxParallelFiles)
	assert.Equal(t, []string{"text"}, cfg.Output.Formats)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	// An explicit path that cannot be read is an error, not a silent default.
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
genai:
  model: gpt-4o
  timeout: 10s
concurrency:
  max_parallel_files: 8
output:
  formats: [json, markdown]
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.GenAI.Model)
	assert.Equal(t, 10*time.Second, cfg.GenAI.Timeout)
	assert.Equal(t, 8, cfg.Concurrency.MaxParallelFiles)
	assert.Equal(t, []string{"json", "markdown"}, cfg.Output.Formats)
	// Untouched sections keep their defaults.
	assert.Equal(t, 3, cfg.GenAI.Retry.MaxAttempts)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("A11Y_TEST_MODEL", "custom-model")
	path := writeConfig(t, `
genai:
  model: ${A11Y_TEST_MODEL}
  url: ${A11Y_TEST_URL:-https://fallback.example/v1}
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-model", cfg.GenAI.Model)
	assert.Equal(t, "https://fallback.example/v1", cfg.GenAI.URL)
}

func TestLoadSetVariableBeatsDefault(t *testing.T) {
	t.Setenv("A11Y_TEST_URL", "https://set.example/v1")
	path := writeConfig(t, `
genai:
  url: ${A11Y_TEST_URL:-https://fallback.example/v1}
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://set.example/v1", cfg.GenAI.URL)
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("A11Y_LINT_API_KEY", "env-key")
	path := writeConfig(t, "genai:\n  model: gpt-4o\n")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.GenAI.APIKey)
}

func TestAPIKeyFromFileWins(t *testing.T) {
	t.Setenv("A11Y_LINT_API_KEY", "env-key")
	path := writeConfig(t, "genai:\n  api_key: file-key\n")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GenAI.APIKey)
}
