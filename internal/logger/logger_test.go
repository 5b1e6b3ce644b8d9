package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "moontools.log")
	require.NoError(t, Setup(path, "info", false))
	t.Cleanup(Close)

	Info("resolved target", "target", "v25")
	Debug("hidden at info level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolved target")
	assert.Contains(t, string(data), "target=v25")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	err := Setup("", "loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"", "info", "DEBUG", "warning", "error"} {
		_, err := parseLevel(level)
		assert.NoError(t, err, level)
	}
}
