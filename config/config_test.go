package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/config"
	"github.com/katalvlaran/redistrict/energy"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "redistrict.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, energy.NameCutEdges, cfg.Energy.Compactness)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
alpha: 0.5
beta: 3
districts: 10
iterations: 250
seed: 42
chains: 4
parallelism: 2
energy:
  compactness: perimeter
  population: none
inputs:
  adjacency: master.csv
  population: precinct_pop.txt
  boundary: border_precincts.csv
log:
  level: debug
  format: json
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Alpha)
	assert.Equal(t, 3.0, cfg.Beta)
	assert.Equal(t, 10, cfg.Districts)
	assert.Equal(t, 250, cfg.Iterations)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 4, cfg.Chains)
	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, energy.NamePerimeter, cfg.Energy.Compactness)
	assert.Equal(t, "master.csv", cfg.Inputs.Adjacency)
	assert.Equal(t, 10, cfg.Grid.Rows, "unset sections keep defaults")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "districts: 3\nalpha: 2\n")
	t.Setenv("REDISTRICT_DISTRICTS", "5")
	t.Setenv("REDISTRICT_ALPHA", "0.25")
	t.Setenv("REDISTRICT_SEED", "not-a-number")
	t.Setenv("REDISTRICT_LOG_LEVEL", "warn")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Districts)
	assert.Equal(t, 0.25, cfg.Alpha)
	assert.Zero(t, cfg.Seed)
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.LoadConfig(writeConfig(t, "districts: [1, 2\n"))
	assert.Error(t, err)

	cases := map[string]string{
		"districts":  "districts: 0\n",
		"iterations": "iterations: -1\n",
		"chains":     "chains: 0\n",
		"output":     "chains: 3\n",
		"grid":       "grid: {rows: 0, cols: 4}\n",
		"population": "grid: {min_population: 5, max_population: 1}\n",
		"perimeter":  "energy: {compactness: perimeter}\n",
		"level":      "log: {level: loud}\n",
		"format":     "log: {format: xml}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, "chains: 2\n")
	_, err := config.LoadConfig(path)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg, err := config.LoadConfig(path, func(c *config.Config) { c.Output = "plans/plan.txt" })
	require.NoError(t, err)
	assert.Equal(t, "plans/plan.txt", cfg.Output)
}
