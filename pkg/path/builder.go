// Package path provides path construction utilities for the rasterizer.
package path

import (
	"vantage/pkg/graphics"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// ToVector feeds a graphics.Path into a golang.org/x/image/vector rasterizer.
func ToVector(p *graphics.Path, rasterizer *vector.Rasterizer) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case graphics.PathOpMoveTo:
			if len(seg.Points) >= 1 {
				rasterizer.MoveTo(
					float32(seg.Points[0].X),
					float32(seg.Points[0].Y),
				)
			}
		case graphics.PathOpLineTo:
			if len(seg.Points) >= 1 {
				rasterizer.LineTo(
					float32(seg.Points[0].X),
					float32(seg.Points[0].Y),
				)
			}
		case graphics.PathOpCurveTo:
			if len(seg.Points) >= 3 {
				rasterizer.CubeTo(
					float32(seg.Points[0].X), float32(seg.Points[0].Y),
					float32(seg.Points[1].X), float32(seg.Points[1].Y),
					float32(seg.Points[2].X), float32(seg.Points[2].Y),
				)
			}
		case graphics.PathOpClose:
			rasterizer.ClosePath()
		}
	}
}

// Builder provides a fluent interface for building paths.
type Builder struct {
	path *graphics.Path
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{
		path: graphics.NewPath(),
	}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to the given point.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.LineTo(x, y)
	return b
}

// CurveTo draws a cubic Bezier curve.
func (b *Builder) CurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) *Builder {
	b.path.CurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.path.Close()
	return b
}

// Quad adds a closed quadrilateral through four corners, in order.
func (b *Builder) Quad(p0, p1, p2, p3 graphics.Point) *Builder {
	b.MoveTo(p0.X, p0.Y)
	b.LineTo(p1.X, p1.Y)
	b.LineTo(p2.X, p2.Y)
	b.LineTo(p3.X, p3.Y)
	return b.Close()
}

// Circle adds a clockwise circle to the path.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds a clockwise (on a y-down raster) ellipse to the path.
func (b *Builder) Ellipse(cx, cy, rx, ry float64) *Builder {
	b.MoveTo(cx+rx, cy)
	b.CurveTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry)
	b.CurveTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy)
	b.CurveTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry)
	b.CurveTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy)
	b.Close()

	return b
}

// reverseCircle adds a counter-clockwise circle.
func (b *Builder) reverseCircle(cx, cy, r float64) *Builder {
	b.MoveTo(cx+r, cy)
	b.CurveTo(cx+r, cy-r*kappa, cx+r*kappa, cy-r, cx, cy-r)
	b.CurveTo(cx-r*kappa, cy-r, cx-r, cy-r*kappa, cx-r, cy)
	b.CurveTo(cx-r, cy+r*kappa, cx-r*kappa, cy+r, cx, cy+r)
	b.CurveTo(cx+r*kappa, cy+r, cx+r, cy+r*kappa, cx+r, cy)
	b.Close()

	return b
}

// Ring adds an annulus between inner and outer radii. The inner circle runs
// the opposite way so the rasterizer's winding accumulation cancels inside it.
func (b *Builder) Ring(cx, cy, inner, outer float64) *Builder {
	b.Circle(cx, cy, outer)
	if inner > 0 {
		b.reverseCircle(cx, cy, inner)
	}
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *graphics.Path {
	return b.path
}

// Clear resets the builder for reuse.
func (b *Builder) Clear() *Builder {
	b.path.Clear()
	return b
}
