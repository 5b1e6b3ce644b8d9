package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"moontools/internal/compat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = `
default: v25
targets:
  v24:
    stellarium_version: "24.4"
    qt: {major: "6", version: "6.7.3"}
    msvc: {year: "2022", toolset: "14.3"}
  v25:
    stellarium_version: "25.2"
    qt: {major: "6", version: "6.8.3"}
    msvc: {year: "2022", toolset: "14.3"}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		compatFile, target, verbose = "", "", false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stellarium-compat.yml")
	require.NoError(t, os.WriteFile(path, []byte(table), 0644))
	return path
}

func TestResolveCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	envFile := filepath.Join(t.TempDir(), "github_env")
	t.Setenv("GITHUB_ENV", envFile)
	t.Setenv("REQUESTED_TARGET", " v24 ")

	out, err := execute(t, "--file", writeTable(t))
	require.NoError(t, err)
	assert.Equal(t, "Using Stellarium target: v24 (Stellarium 24.4, Qt 6.7.3, MSVC 2022)\n", out)

	data, err := os.ReadFile(envFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "STELLARIUM_TARGET=v24\n")
	assert.Contains(t, string(data), "QT_VERSION=6.7.3\n")
}

func TestResolveCommandTargetFlag(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "github_env")
	t.Setenv("GITHUB_ENV", envFile)
	t.Setenv("REQUESTED_TARGET", "")

	out, err := execute(t, "--file", writeTable(t), "--target", "v25")
	require.NoError(t, err)
	assert.Contains(t, out, "Using Stellarium target: v25")
}

func TestResolveCommandFailures(t *testing.T) {
	t.Setenv("REQUESTED_TARGET", "")

	t.Run("missing env file variable", func(t *testing.T) {
		t.Setenv("GITHUB_ENV", "")
		_, err := execute(t, "--file", writeTable(t))
		assert.ErrorIs(t, err, compat.ErrNoOutputSink)
	})

	t.Run("missing table", func(t *testing.T) {
		t.Setenv("GITHUB_ENV", filepath.Join(t.TempDir(), "github_env"))
		_, err := execute(t, "--file", filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, compat.ErrConfigNotFound)
	})
}

func TestListCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out, err := execute(t, "list", "--file", writeTable(t))
	require.NoError(t, err)
	assert.Contains(t, out, "TARGET")
	assert.Contains(t, out, "* v25")
	assert.Contains(t, out, "  v24")
}
