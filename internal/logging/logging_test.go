package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "amphi.log")

	logger, cleanup, err := New(path, "debug")
	require.NoError(t, err)
	logger.Debug("overlay opened")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "overlay opened")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "amphi.log"), "loud")
	assert.Error(t, err)
}

func TestLevelFiltersMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amphi.log")

	logger, cleanup, err := New(path, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewConsole(t *testing.T) {
	logger, err := NewConsole("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = NewConsole("loud")
	assert.Error(t, err)
}
