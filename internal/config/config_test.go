package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
log:
  dir: "/var/log/hanabi"
  level: "debug"
  max_size_mb: 5

input:
  path: "games.txt"

output:
  path: "summary.txt"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/log/hanabi", cfg.Log.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, "games.txt", cfg.Input.Path)
	assert.Equal(t, "summary.txt", cfg.Output.Path)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultLogMaxSize, cfg.Log.MaxSizeMB)
	assert.Empty(t, cfg.Input.Path)
	assert.Empty(t, cfg.Output.Path)
}

func TestDefault(t *testing.T) {
	// Note: Not parallel because Default() reads .env from the working directory

	cfg := Default()
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.Log.Level)
	assert.Positive(t, cfg.Log.MaxSizeMB)
}

func TestLogConfig_MaxSizeBytes(t *testing.T) {
	t.Parallel()

	cfg := &LogConfig{MaxSizeMB: 3}
	assert.Equal(t, int64(3*1024*1024), cfg.MaxSizeBytes())
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel because it modifies environment variables

	t.Setenv("HANABI_LOG_DIR", "/tmp/env-logs")
	t.Setenv("HANABI_LOG_LEVEL", "warn")
	t.Setenv("HANABI_LOG_MAX_SIZE_MB", "42")
	t.Setenv("HANABI_INPUT", "env-input.txt")
	t.Setenv("HANABI_OUTPUT", "env-output.txt")

	content := `
log:
  level: "debug"
input:
  path: "file-input.txt"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/env-logs", cfg.Log.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 42, cfg.Log.MaxSizeMB)
	assert.Equal(t, "env-input.txt", cfg.Input.Path)
	assert.Equal(t, "env-output.txt", cfg.Output.Path)
}

func TestLoadFromDotEnv(t *testing.T) {
	// Not parallel because it changes the working directory

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("HANABI_OUTPUT=dotenv-output.txt\n"), 0o600))
	t.Chdir(tmpDir)
	t.Setenv("HANABI_OUTPUT", "")
	require.NoError(t, os.Unsetenv("HANABI_OUTPUT"))

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, "dotenv-output.txt", cfg.Output.Path)
}
