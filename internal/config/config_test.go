package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Defaults(t *testing.T) {
	cfg, err := Read("")
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "Project Gantt Chart", cfg.Chart.Title)
	assert.Equal(t, "02/01/2006", cfg.Chart.DateLayout)
	assert.Equal(t, 0.3, cfg.Chart.ParallelAlpha)
	assert.Equal(t, 3, cfg.Terminal.CellWidth)
	assert.Equal(t, 1400, cfg.SVG.Width)
	assert.Equal(t, 800, cfg.SVG.Height)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestRead_EnvOverride(t *testing.T) {
	t.Setenv("GANTT_TITLE", "Launch Plan")
	t.Setenv("GANTT_CELL_WIDTH", "5")

	cfg, err := Read("")
	require.NoError(t, err)

	assert.Equal(t, "Launch Plan", cfg.Chart.Title)
	assert.Equal(t, 5, cfg.Terminal.CellWidth)
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantt.yaml")
	data := "env: dev\nchart:\n  title: From File\nsvg:\n  width: 1000\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "From File", cfg.Chart.Title)
	assert.Equal(t, 1000, cfg.SVG.Width)
	assert.Equal(t, 800, cfg.SVG.Height)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestChartOptions(t *testing.T) {
	cfg, err := Read("")
	require.NoError(t, err)

	opts := cfg.Chart.ChartOptions()
	assert.Equal(t, "Project Gantt Chart", opts.Title)
	assert.Equal(t, "Parallel Activities", opts.ParallelLabel)
	assert.Equal(t, 45.0, opts.TickRotation)
	assert.Equal(t, 2, opts.LegendColumns)
}
