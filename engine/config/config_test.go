package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, core.DefaultWindowProps(), cfg.WindowProps())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.False(t, cfg.Headless.Enabled)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Equal(t, colors.DarkGray, cfg.ClearColor)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("STRATA_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "strata.toml", `
clear_color = [0.0, 0.5, 1.0, 1.0]

[window]
title = "Sandbox"
width = 800
height = 600
vsync = false

[headless]
enabled = true
frames = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, core.WindowProps{Title: "Sandbox", Width: 800, Height: 600, VSync: false}, cfg.WindowProps())
	assert.True(t, cfg.Headless.Enabled)
	assert.Equal(t, 3, cfg.Headless.Frames)
	assert.Equal(t, colors.Color{0, 0.5, 1, 1}, cfg.ClearColor)
	// untouched sections keep their defaults
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "strata.yaml", `
window:
  title: Sandbox
log:
  level: warn
  development: false
metrics:
  addr: ":9090"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sandbox", cfg.Window.Title)
	assert.Equal(t, uint32(1280), cfg.Window.Width)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeFile(t, "strata.yml", "window:\n  width: 640\n")
	t.Setenv("STRATA_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint32(640), cfg.Window.Width)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "strata.toml", "[window]\nwidth = 800\nheight = 600\n")
	t.Setenv("STRATA_WINDOW_WIDTH", "1024")
	t.Setenv("STRATA_WINDOW_VSYNC", "false")
	t.Setenv("STRATA_HEADLESS_FRAMES", "10")
	t.Setenv("STRATA_CLEAR_COLOR", "magenta")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(1024), cfg.Window.Width)
	assert.Equal(t, uint32(600), cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, 10, cfg.Headless.Frames)
	assert.Equal(t, colors.Magenta, cfg.ClearColor)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		env  map[string]string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.toml")},
		{name: "unsupported format", path: writeFile(t, "strata.json", "{}")},
		{name: "malformed toml", path: writeFile(t, "bad.toml", "[window\n")},
		{name: "bad env value", env: map[string]string{"STRATA_WINDOW_WIDTH": "wide"}},
		{name: "bad env color", env: map[string]string{"STRATA_CLEAR_COLOR": "teal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STRATA_CONFIG", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLogging(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "info"
	lc := cfg.Logging()
	assert.Equal(t, "info", lc.Level)
	assert.True(t, lc.Development)
	assert.Equal(t, []string{"stdout"}, lc.OutputPaths)
}
