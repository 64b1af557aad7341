package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfigEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadRunConfig("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.Level)
	assert.True(t, cfg.Log.Timestamp)
	assert.Equal(t, 5, cfg.Demo.Captured)
}

func TestLoadRunConfigExample(t *testing.T) {
	cfg, err := loadRunConfig("ex.config.toml")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Log.Level)
	assert.False(t, cfg.Log.Timestamp)
	assert.True(t, cfg.Log.NoColor)
	assert.Equal(t, 7, cfg.Demo.Captured)
}

func TestLoadRunConfigPartialOverlay(t *testing.T) {
	path := writeConfig(t, "[worker]\ncaptured = 0\n")
	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Demo.Captured)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.Level)
}

func TestLoadRunConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown level", body: "[log]\nlevel = \"loud\"\n"},
		{name: "unknown key", body: "[worker]\nthreads = 2\n"},
		{name: "malformed", body: "[log\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadRunConfig(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	_, err := loadRunConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ftlib.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
