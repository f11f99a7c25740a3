package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "median", cfg.Filter.Statistic)
	assert.Equal(t, 3, cfg.Filter.Radius)
	assert.Equal(t, 1<<10, cfg.Filter.BinWarnThreshold)
	assert.Equal(t, 2, cfg.Flood.Connectivity)
	assert.Equal(t, -1.0, cfg.Flood.Tolerance)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankfilter.yaml")
	data := []byte("filter:\n  statistic: otsu\n  radius: 7\nflood:\n  tolerance: 2.5\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "otsu", cfg.Filter.Statistic)
	assert.Equal(t, 7, cfg.Filter.Radius)
	assert.Equal(t, 2.5, cfg.Flood.Tolerance)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1<<10, cfg.Filter.BinWarnThreshold)
	assert.Equal(t, 2, cfg.Flood.Connectivity)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filter: ["), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filter.Statistic = "entropy"
	path := filepath.Join(t.TempDir(), "sub", "rankfilter.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
