// Package raster provides anti-aliased rasterization of grid geometry to
// images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"vantage/pkg/graphics"
	pathpkg "vantage/pkg/path"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas represents a drawing surface for rasterization.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	// Default background
	background color.Color

	// Reused between fills; Reset keeps its buffers when they are big enough.
	rasterizer *vector.Rasterizer
}

// NewCanvas creates a new canvas with the given dimensions, filled white.
// Non-positive dimensions yield an empty canvas that ignores all drawing.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	return &Canvas{
		img:        img,
		width:      width,
		height:     height,
		background: color.White,
		rasterizer: &vector.Rasterizer{},
	}
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with bg, which becomes the new background. A nil bg
// reuses the current background.
func (c *Canvas) Clear(bg color.Color) {
	if bg != nil {
		c.background = bg
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, draw.Src)
}

// FillPath fills a path with the given color. Only the path's bounding box
// is rasterized, so thin lines across a large canvas stay cheap.
func (c *Canvas) FillPath(path *graphics.Path, col color.Color) {
	if path.IsEmpty() {
		return
	}

	b := path.Bounds().Intersect(graphics.Viewport(float64(c.width), float64(c.height)))
	if !finite(b.X, b.Y, b.Width, b.Height) || b.Empty() {
		return
	}

	r := image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.MaxX())), int(math.Ceil(b.MaxY())),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	c.rasterizer.Reset(r.Dx(), r.Dy())
	local := path.Transform(graphics.Translate(-float64(r.Min.X), -float64(r.Min.Y)))
	pathpkg.ToVector(local, c.rasterizer)
	c.rasterizer.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// StrokeLine draws a butt-capped line of the given width.
func (c *Canvas) StrokeLine(s graphics.Segment, col color.Color, width float64) {
	if width <= 0 {
		return
	}
	outline, ok := lineOutline(s, width/2)
	if !ok {
		return
	}
	c.FillPath(outline, col)
}

// lineOutline expands a segment into the quadrilateral covered by its stroke.
func lineOutline(s graphics.Segment, halfWidth float64) (*graphics.Path, bool) {
	length := s.Length()
	if length == 0 || !finite(length) {
		return nil, false
	}
	a, b := s.Start(), s.End()

	// Perpendicular offset
	n := graphics.Pt(-(b.Y-a.Y)/length*halfWidth, (b.X-a.X)/length*halfWidth)

	quad := pathpkg.NewBuilder().Quad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	return quad.Build(), true
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(center graphics.Point, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.FillPath(pathpkg.NewBuilder().Circle(center.X, center.Y, r).Build(), col)
}

// StrokeCircle draws a circle outline centred on radius r.
func (c *Canvas) StrokeCircle(center graphics.Point, r, width float64, col color.Color) {
	if r <= 0 || width <= 0 {
		return
	}
	inner := r - width/2
	outer := r + width/2
	c.FillPath(pathpkg.NewBuilder().Ring(center.X, center.Y, inner, outer).Build(), col)
}

// DrawImage composites img through the affine transform m, which maps source
// pixel coordinates to canvas coordinates. Opacity is applied as a uniform
// source mask.
func (c *Canvas) DrawImage(img image.Image, m graphics.Matrix, opacity float64) {
	if img == nil || opacity <= 0 || m.Determinant() == 0 {
		return
	}

	var opts *xdraw.Options
	if opacity < 1 {
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)}),
		}
	}
	xdraw.BiLinear.Transform(c.img, m.Aff3(), img, img.Bounds(), xdraw.Over, opts)
}

// EncodePNG writes the canvas as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SaveToFile writes the canvas to a PNG file.
func (c *Canvas) SaveToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
