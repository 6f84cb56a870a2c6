package perspective

import (
	"math"

	"vantage/pkg/graphics"
)

// Thresholds for re-seeding vp1/vp2 when switching in and out of one-point
// mode.
const (
	onePointCenterRatio = 0.5  // centre vp1 if it is further than this × width
	restoreThreshold    = 10.0 // restore defaults if a point sits within this of centre
)

// ConfigOption changes one field of a GridConfig.
type ConfigOption func(*GridConfig)

// WithType sets the number of active vanishing points. Invalid types are
// ignored.
func WithType(t GridType) ConfigOption {
	return func(c *GridConfig) {
		if t.Valid() {
			c.Type = t
		}
	}
}

// WithDensity sets the line density. Unknown densities are ignored.
func WithDensity(d Density) ConfigOption {
	return func(c *GridConfig) {
		if _, ok := geometricByDensity[d]; ok {
			c.Density = d
		}
	}
}

// WithOrientation places vp3 above or below the horizon.
func WithOrientation(o Orientation) ConfigOption {
	return func(c *GridConfig) {
		if o == Top || o == Bottom {
			c.ThirdPointOrientation = o
		}
	}
}

// SetGridConfig applies opts and keeps the vanishing points consistent with
// the new configuration:
//   - a changed orientation moves vp3 to that side of the horizon;
//   - entering one-point mode centres vp1 if it sits far off to the side;
//   - leaving one-point mode puts vp1/vp2 back at their defaults if they
//     were left near the centre.
//
// Inactive points keep their values, so switching type never loses them.
func SetGridConfig(s State, opts ...ConfigOption) State {
	prev := s.Config
	next := prev
	for _, opt := range opts {
		opt(&next)
	}

	vp3 := &s.VanishingPoints[VP3.Index()]
	if next.ThirdPointOrientation != prev.ThirdPointOrientation {
		d := math.Abs(vp3.DistanceFromCenter)
		if next.ThirdPointOrientation == Top {
			d = -d
		}
		vp3.DistanceFromCenter = d
	}

	vp1 := &s.VanishingPoints[VP1.Index()]
	vp2 := &s.VanishingPoints[VP2.Index()]
	side := s.CanvasWidth * defaultSideRatio

	if next.Type == OnePoint && math.Abs(vp1.DistanceFromCenter) > s.CanvasWidth*onePointCenterRatio {
		vp1.DistanceFromCenter = 0
	}
	if prev.Type == OnePoint && next.Type != OnePoint {
		if math.Abs(vp1.DistanceFromCenter) < restoreThreshold {
			vp1.DistanceFromCenter = -side
		}
		if math.Abs(vp2.DistanceFromCenter) < restoreThreshold {
			vp2.DistanceFromCenter = side
		}
	}

	s.Config = next
	return s
}

// SetVanishingPointDistance sets a point's world distance directly. For vp3
// the orientation follows the new sign.
func SetVanishingPointDistance(s State, id VPID, distance float64) State {
	if !id.Valid() {
		return s
	}
	s.VanishingPoints[id.Index()].DistanceFromCenter = distance
	if id == VP3 {
		s.Config.ThirdPointOrientation = OrientationFor(distance)
	}
	return s
}

// SetHorizonAngle tilts the horizon, clamped to [-90, 90] degrees.
func SetHorizonAngle(s State, degrees float64) State {
	if math.IsNaN(degrees) {
		return s
	}
	s.Camera.HorizonAngle = graphics.Clamp(degrees, MinHorizonAngle, MaxHorizonAngle)
	return s
}

// MoveHorizon shifts the horizon vertically by dy pixels.
func MoveHorizon(s State, dy float64) State {
	s.Camera.HorizonY += dy
	return s
}

// Pan translates the camera.
func Pan(s State, dx, dy float64) State {
	s.Camera.PanX += dx
	s.Camera.PanY += dy
	return s
}

// Zoom adds delta to the zoom level, clamped to [MinZoom, MaxZoom].
func Zoom(s State, delta float64) State {
	if math.IsNaN(delta) {
		return s
	}
	s.Camera.Zoom = graphics.Clamp(s.Camera.Zoom+delta, MinZoom, MaxZoom)
	return s
}

// ResetCamera recentres the horizon and clears pan and zoom. Vanishing
// point positions and the horizon tilt are kept.
func ResetCamera(s State) State {
	s.Camera.HorizonY = s.CanvasHeight / 2
	s.Camera.PanX = 0
	s.Camera.PanY = 0
	s.Camera.Zoom = 1
	return s
}

// ResetAll returns a fresh default state for the same canvas.
func ResetAll(s State) State {
	return NewState(s.CanvasWidth, s.CanvasHeight)
}

// Resize updates the canvas dimensions and keeps everything else.
func Resize(s State, width, height float64) State {
	s.CanvasWidth = width
	s.CanvasHeight = height
	return s
}

// SetHandleDisplacement sets the visual displacement of a handle.
func SetHandleDisplacement(s State, id VPID, p graphics.Point) State {
	if !id.Valid() {
		return s
	}
	s.Handles[id.Index()].X = p.X
	s.Handles[id.Index()].Y = p.Y
	return s
}

// HandleDisplacement returns the current displacement of a handle.
func HandleDisplacement(s State, id VPID) graphics.Point {
	h, ok := s.Handle(id)
	if !ok {
		return graphics.Point{}
	}
	return graphics.Pt(h.X, h.Y)
}
