package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100_000, cfg.Iterations)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, SourceAuto, cfg.Source)
	assert.Equal(t,
		[]float64{0.50, 0.90, 0.99, 0.999, 0.9999},
		cfg.Percentiles,
	)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	yaml := `
log_level: debug
iterations: 5000
workers: 8
work_size: 2000
source: wall
percentiles:
  - 0.5
  - 0.99
no_color: true
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.Iterations)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 2000, cfg.WorkSize)
	assert.Equal(t, SourceWall, cfg.Source)
	assert.Equal(t, []float64{0.5, 0.99}, cfg.Percentiles)
	assert.True(t, cfg.NoColor)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	// A tab at the start is invalid YAML indentation.
	require.NoError(t, os.WriteFile(path, []byte("\t- bad"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestValidate_InvalidIterations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be positive")
}

func TestValidate_InvalidWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be positive")
}

func TestValidate_InvalidSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = "sundial"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source must be one of")
}

func TestValidate_PercentileOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Percentiles = []float64{0.5, 1.5}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percentiles must be fractions")
}
