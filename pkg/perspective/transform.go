package perspective

import (
	"math"

	"vantage/pkg/graphics"
)

// Screen space is canvas pixels. World space is zoom-independent distance
// from the camera centre. Handles live in screen space only; vanishing
// points live in world space and reach the screen through the camera.

// referenceHandleRestY places the reference image handle below the VP
// handles.
const referenceHandleRestY = 80.0

// ScreenPoint is a vanishing point projected onto the canvas.
type ScreenPoint struct {
	ID VPID
	graphics.Point
}

// horizonRadians returns the camera tilt in radians.
func (s State) horizonRadians() float64 {
	return graphics.Radians(s.Camera.HorizonAngle)
}

// ScreenCenter returns the camera centre on screen: the horizontal canvas
// centre and the horizon, both shifted by the pan.
func ScreenCenter(s State) graphics.Point {
	return graphics.Pt(
		s.CanvasWidth/2+s.Camera.PanX,
		s.Camera.HorizonY+s.Camera.PanY,
	)
}

// CanvasCenter returns the fixed centre of the canvas that handles are
// anchored to. It ignores the camera.
func CanvasCenter(s State) graphics.Point {
	return graphics.Pt(s.CanvasWidth/2, s.CanvasHeight/2)
}

// WorldToScreen projects a vanishing point through the camera. vp1 and vp2
// stay on the (possibly tilted) horizon; vp3's offset vector is rotated with
// the horizon so it tilts along with it. Unknown ids project to the centre.
func WorldToScreen(s State, id VPID) graphics.Point {
	center := ScreenCenter(s)
	vp, ok := s.VanishingPoint(id)
	if !ok {
		return center
	}

	theta := s.horizonRadians()
	zoom := s.Camera.Zoom

	switch id {
	case VP1, VP2:
		dist := vp.DistanceFromCenter * zoom
		return center.Add(graphics.Pt(dist*math.Cos(theta), dist*math.Sin(theta)))
	case VP3:
		offset := graphics.Pt(vp.X*zoom, vp.DistanceFromCenter*zoom)
		return center.Add(offset.Rotate(theta))
	}
	return center
}

// TransformedVanishingPoints projects all three slots, active or not.
func TransformedVanishingPoints(s State) [vpCount]ScreenPoint {
	var out [vpCount]ScreenPoint
	for i, id := range AllVPs {
		out[i] = ScreenPoint{ID: id, Point: WorldToScreen(s, id)}
	}
	return out
}

// ScreenDeltaToWorldDelta converts a screen-pixel distance into world units
// at the current zoom.
func ScreenDeltaToWorldDelta(s State, d float64) float64 {
	if s.Camera.Zoom == 0 {
		return d
	}
	return d / s.Camera.Zoom
}

// handleRestX is the handle's rest offset; a lone vp1 sits at the centre.
func handleRestX(s State, h Handle) float64 {
	if h.ID == VP1 && s.Config.Type == OnePoint {
		return 0
	}
	return h.RestX
}

// HandlePosition returns where the handle for id is drawn: the canvas
// centre plus its rest offset plus its current displacement.
func HandlePosition(s State, id VPID) graphics.Point {
	h, ok := s.Handle(id)
	if !ok {
		return CanvasCenter(s)
	}
	return CanvasCenter(s).Add(graphics.Pt(handleRestX(s, h)+h.X, h.Y))
}

// HandleVisible reports whether the handle for id is shown for the current
// grid type.
func HandleVisible(s State, id VPID) bool {
	return id.Valid() && s.Config.Type.Active(id)
}

// ReferenceHandlePosition returns the reference image drag handle's screen
// position, or false if there is no reference image.
func ReferenceHandlePosition(s State) (graphics.Point, bool) {
	if s.Reference == nil {
		return graphics.Point{}, false
	}
	ref := s.Reference
	return CanvasCenter(s).Add(graphics.Pt(ref.HandleX, referenceHandleRestY+ref.HandleY)), true
}
