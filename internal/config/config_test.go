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
	path := filepath.Join(t.TempDir(), "quill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvAPIKey, EnvAPIKeyLegacy, EnvImages, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
story: ./examples/housemaid/story.yaml
root: prologue
log_level: debug
images:
  enabled: true
  api_key: file-key
  model: imagen-4.0-generate-001
  timeout: 45s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./examples/housemaid/story.yaml", cfg.Story)
	assert.Equal(t, "prologue", cfg.Root)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Images.Enabled)
	assert.Equal(t, "file-key", cfg.Images.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Images.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "images:\n  api_key: file-key\n")

	t.Setenv(EnvAPIKeyLegacy, "legacy-key")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Images.APIKey, "legacy variable does not override the file")

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvImages, "true")
	t.Setenv(EnvLogLevel, "warn")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Images.APIKey)
	assert.True(t, cfg.Images.Enabled)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_LegacyKeyFillsEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKeyLegacy, "legacy-key")

	cfg, err := Load(writeConfig(t, "story: s.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.Images.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "images: [unclosed"))
	assert.Error(t, err)

	t.Setenv(EnvImages, "maybe")
	_, err = Load(writeConfig(t, ""))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
