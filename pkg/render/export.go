package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"vantage/pkg/perspective"
	"vantage/pkg/raster"
)

// ErrEmptyCanvas is returned when an export target has no pixels.
var ErrEmptyCanvas = errors.New("render: empty canvas")

// DefaultExportName is the file name used when none is given.
const DefaultExportName = "perspective-grid"

// ExportOptions describe an export target. Zero fields take the defaults.
type ExportOptions struct {
	Width  int
	Height int
	// Name is the file name without extension.
	Name string
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.Width == 0 {
		o.Width = perspective.ExportWidth
	}
	if o.Height == 0 {
		o.Height = perspective.ExportHeight
	}
	if o.Name == "" {
		o.Name = DefaultExportName
	}
	return o
}

// ExportCanvas renders st rescaled to the export size, without UI, onto a
// fresh canvas. ref may be nil.
func ExportCanvas(st perspective.State, ref image.Image, opts ExportOptions) (*raster.Canvas, error) {
	opts = opts.withDefaults()
	if opts.Width < 0 || opts.Height < 0 {
		return nil, ErrEmptyCanvas
	}

	scaled := perspective.ScaleForExport(st, float64(opts.Width), float64(opts.Height))
	c := raster.NewCanvas(opts.Width, opts.Height)
	Render(c, scaled, Options{Reference: ref})
	return c, nil
}

// Export writes the export render of st to w as PNG.
func Export(w io.Writer, st perspective.State, ref image.Image, opts ExportOptions) error {
	c, err := ExportCanvas(st, ref, opts)
	if err != nil {
		return err
	}
	return c.EncodePNG(w)
}

// ExportFile writes "<name>.png" into dir and returns its path.
func ExportFile(dir string, st perspective.State, ref image.Image, opts ExportOptions) (string, error) {
	opts = opts.withDefaults()
	c, err := ExportCanvas(st, ref, opts)
	if err != nil {
		return "", err
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	path := filepath.Join(dir, opts.Name+".png")
	if err := c.SaveToFile(path); err != nil {
		return "", err
	}
	return path, nil
}
