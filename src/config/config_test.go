package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test. godotenv treats a key
// set to "" as present and will not fill it from the file.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	unsetenv(t, "LOG_LEVEL", "LOG_FORMAT", "NUMERIC_ALLOW_CAST")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.EnvFileLoaded)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.AllowCast)
}

func TestLoadReadsEnvFile(t *testing.T) {
	unsetenv(t, "LOG_LEVEL", "NUMERIC_ALLOW_CAST")
	t.Setenv("LOG_FORMAT", "json")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nLOG_FORMAT=console\nNUMERIC_ALLOW_CAST=false\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.EnvFileLoaded)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Already set in the environment, so the file does not override it.
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.AllowCast)
}

func TestLoadRejectsInvalidBool(t *testing.T) {
	t.Setenv("NUMERIC_ALLOW_CAST", "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "NUMERIC_ALLOW_CAST")
}
