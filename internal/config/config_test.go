package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "moontools.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ci/stellarium-compat.yml", cfg.Compat.File)
	assert.Equal(t, "REQUESTED_TARGET", cfg.Compat.TargetEnv)
	assert.Equal(t, "GITHUB_ENV", cfg.Compat.ExportEnv)
	assert.True(t, cfg.Compat.LockEnabled())
	assert.Equal(t, "/Users/ryder/Downloads/Relaxed-Moon-Avoidance.xlsx", cfg.Sheet.Workbook)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "defaults must not be written to disk")
}

func TestLoadConfigFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moontools.toml")
	content := `
[compat]
file = "build/compat.yml"
lock = false

[sheet]
workbook = "testdata/moon.xlsx"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "build/compat.yml", cfg.Compat.File)
	assert.False(t, cfg.Compat.LockEnabled())
	assert.Equal(t, "REQUESTED_TARGET", cfg.Compat.TargetEnv)
	assert.Equal(t, "GITHUB_ENV", cfg.Compat.ExportEnv)
	assert.Equal(t, "testdata/moon.xlsx", cfg.Sheet.Workbook)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moontools.toml")
	require.NoError(t, os.WriteFile(path, []byte("[compat\nfile = 1"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
