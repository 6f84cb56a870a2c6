// Package config loads runtime settings from VANTAGE_* environment
// variables.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"vantage/pkg/perspective"
	"vantage/pkg/render"
)

const prefix = "VANTAGE"

type Config struct {
	CanvasWidth  int `envconfig:"CANVAS_WIDTH" default:"1280"`
	CanvasHeight int `envconfig:"CANVAS_HEIGHT" default:"720"`

	GridType perspective.GridType `envconfig:"GRID_TYPE" default:"2"`
	Density  perspective.Density  `envconfig:"DENSITY" default:"medium"`

	ExportWidth  int    `envconfig:"EXPORT_WIDTH" default:"1920"`
	ExportHeight int    `envconfig:"EXPORT_HEIGHT" default:"1080"`
	ExportName   string `envconfig:"EXPORT_NAME" default:"perspective-grid"`
	ExportDir    string `envconfig:"EXPORT_DIR" default:"."`

	Addr     string     `envconfig:"ADDR" default:":8080"`
	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.ExportWidth <= 0 || c.ExportHeight <= 0 {
		return fmt.Errorf("invalid export size %dx%d", c.ExportWidth, c.ExportHeight)
	}
	if !c.GridType.Valid() {
		return fmt.Errorf("invalid grid type %d", c.GridType)
	}
	return nil
}

// InitialState returns the default state for the configured canvas.
func (c *Config) InitialState() perspective.State {
	st := perspective.NewState(float64(c.CanvasWidth), float64(c.CanvasHeight))
	return perspective.SetGridConfig(st,
		perspective.WithType(c.GridType),
		perspective.WithDensity(c.Density),
	)
}

// ExportOptions returns the configured export target.
func (c *Config) ExportOptions() render.ExportOptions {
	return render.ExportOptions{
		Width:  c.ExportWidth,
		Height: c.ExportHeight,
		Name:   c.ExportName,
	}
}

// NewLogger returns a text logger at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
