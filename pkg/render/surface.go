// Package render draws a perspective grid onto a Surface. The raster canvas
// is the production surface; the Recorder captures draw calls instead of
// pixels so the same pass can be inspected or shipped as JSON.
package render

import (
	"image"
	"image/color"

	"vantage/pkg/graphics"
	"vantage/pkg/raster"
)

// Surface is the set of drawing primitives a grid render needs. All
// coordinates are canvas pixels.
type Surface interface {
	// Clear fills the whole surface with bg.
	Clear(bg color.Color)
	StrokeLine(s graphics.Segment, col color.Color, width float64)
	FillCircle(center graphics.Point, r float64, col color.Color)
	StrokeCircle(center graphics.Point, r, width float64, col color.Color)
	// DrawImage composites img through m, which maps image pixel
	// coordinates to surface coordinates.
	DrawImage(img image.Image, m graphics.Matrix, opacity float64)
}

var (
	_ Surface = (*raster.Canvas)(nil)
	_ Surface = (*Recorder)(nil)
)
