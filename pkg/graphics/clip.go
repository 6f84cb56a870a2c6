package graphics

import "math"

// Segment is a straight line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Seg is shorthand for a Segment between two points.
func Seg(a, b Point) Segment {
	return Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// Start returns the first endpoint.
func (s Segment) Start() Point { return Point{s.X1, s.Y1} }

// End returns the second endpoint.
func (s Segment) End() Point { return Point{s.X2, s.Y2} }

// Length returns the segment length.
func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// Cohen-Sutherland region codes.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

// maxClipIterations bounds the refinement loop. A rectangle needs at most
// four passes; the slack covers endpoints that land a rounding error
// outside an edge after intersection.
const maxClipIterations = 20

// ClipLine clips s to the rectangle using the Cohen-Sutherland algorithm.
// It returns false when no part of the segment lies inside the bounds.
// Empty or non-finite bounds never contain anything.
func ClipLine(s Segment, bounds Rect) (Segment, bool) {
	if bounds.Empty() {
		return Segment{}, false
	}

	minX, minY := bounds.X, bounds.Y
	maxX, maxY := bounds.MaxX(), bounds.MaxY()

	code := func(x, y float64) int {
		c := outInside
		if x < minX {
			c |= outLeft
		} else if x > maxX {
			c |= outRight
		}
		if y < minY {
			c |= outTop
		} else if y > maxY {
			c |= outBottom
		}
		return c
	}

	x1, y1, x2, y2 := s.X1, s.Y1, s.X2, s.Y2
	if math.IsNaN(x1) || math.IsNaN(y1) || math.IsNaN(x2) || math.IsNaN(y2) {
		return Segment{}, false
	}

	c1, c2 := code(x1, y1), code(x2, y2)

	for i := 0; i < maxClipIterations; i++ {
		if c1|c2 == 0 {
			return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
		}
		if c1&c2 != 0 {
			return Segment{}, false
		}

		c := c1
		if c == 0 {
			c = c2
		}

		var x, y float64
		switch {
		case c&outTop != 0:
			x = x1 + (x2-x1)*(minY-y1)/(y2-y1)
			y = minY
		case c&outBottom != 0:
			x = x1 + (x2-x1)*(maxY-y1)/(y2-y1)
			y = maxY
		case c&outRight != 0:
			y = y1 + (y2-y1)*(maxX-x1)/(x2-x1)
			x = maxX
		case c&outLeft != 0:
			y = y1 + (y2-y1)*(minX-x1)/(x2-x1)
			x = minX
		}

		if c == c1 {
			x1, y1 = x, y
			c1 = code(x1, y1)
		} else {
			x2, y2 = x, y
			c2 = code(x2, y2)
		}
	}

	return Segment{}, false
}
