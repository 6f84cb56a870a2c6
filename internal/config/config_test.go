package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantage/pkg/perspective"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.CanvasWidth)
	assert.Equal(t, 720, cfg.CanvasHeight)
	assert.Equal(t, perspective.TwoPoint, cfg.GridType)
	assert.Equal(t, perspective.Medium, cfg.Density)
	assert.Equal(t, 1920, cfg.ExportWidth)
	assert.Equal(t, "perspective-grid", cfg.ExportName)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VANTAGE_CANVAS_WIDTH", "800")
	t.Setenv("VANTAGE_CANVAS_HEIGHT", "600")
	t.Setenv("VANTAGE_GRID_TYPE", "3")
	t.Setenv("VANTAGE_DENSITY", "high")
	t.Setenv("VANTAGE_LOG_LEVEL", "debug")
	t.Setenv("VANTAGE_ADDR", "127.0.0.1:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.CanvasWidth)
	assert.Equal(t, perspective.ThreePoint, cfg.GridType)
	assert.Equal(t, perspective.High, cfg.Density)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)

	st := cfg.InitialState()
	assert.Equal(t, 800.0, st.CanvasWidth)
	assert.Equal(t, perspective.ThreePoint, st.Config.Type)
	assert.Equal(t, perspective.High, st.Config.Density)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"VANTAGE_DENSITY":      "extreme",
		"VANTAGE_GRID_TYPE":    "4",
		"VANTAGE_CANVAS_WIDTH": "0",
		"VANTAGE_EXPORT_WIDTH": "-1",
		"VANTAGE_LOG_LEVEL":    "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: slog.LevelWarn}
	var buf bytes.Buffer
	log := cfg.NewLogger(&buf)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestExportOptions(t *testing.T) {
	cfg := &Config{ExportWidth: 640, ExportHeight: 480, ExportName: "g"}
	opts := cfg.ExportOptions()
	assert.Equal(t, 640, opts.Width)
	assert.Equal(t, "g", opts.Name)
}
