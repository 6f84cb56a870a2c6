package perspective

import (
	"vantage/pkg/graphics"
)

// DefaultHitRadius is how close, in screen pixels, a pointer must be to a
// handle to grab it.
const DefaultHitRadius = 25.0

// HitTest returns the handle under (x, y) using DefaultHitRadius.
func HitTest(s State, x, y float64, showUI bool) (VPID, bool) {
	return HitTestRadius(s, x, y, showUI, DefaultHitRadius)
}

// HitTestRadius returns the first visible handle within radius of (x, y).
// Nothing is hit while the UI is hidden.
func HitTestRadius(s State, x, y float64, showUI bool, radius float64) (VPID, bool) {
	if !showUI {
		return 0, false
	}
	p := graphics.Pt(x, y)
	for _, h := range s.Handles {
		if !HandleVisible(s, h.ID) {
			continue
		}
		if HandlePosition(s, h.ID).Dist(p) < radius {
			return h.ID, true
		}
	}
	return 0, false
}

// DragSnapshot captures the handle displacement and world values at drag
// start. Drags are applied relative to it because handles move in screen
// pixels while vanishing points move in zoom-scaled world units.
type DragSnapshot struct {
	ID      VPID
	HandleX float64
	HandleY float64
	VPDist  float64
	VPX     float64
}

// BeginDrag snapshots the handle and vanishing point for id.
func BeginDrag(s State, id VPID) (DragSnapshot, bool) {
	h, ok := s.Handle(id)
	if !ok {
		return DragSnapshot{}, false
	}
	vp := s.VanishingPoints[id.Index()]
	snap := DragSnapshot{
		ID:      id,
		HandleX: h.X,
		HandleY: h.Y,
		VPDist:  vp.DistanceFromCenter,
	}
	if id == VP3 {
		snap.VPX = vp.X
	}
	return snap, true
}

// UpdateDrag moves the vanishing point for id so that its handle follows
// the pointer at (x, y). The handle shows the raw screen displacement; the
// vanishing point moves by the incremental screen delta divided by zoom, so
// a drag looks 1:1 on screen at any zoom. vp1/vp2 move along the horizon
// only; vp3 moves in both axes and keeps the orientation in step with the
// sign of its distance.
//
// A nil snapshot, a snapshot for a different handle, or an unknown id leaves
// the state unchanged.
func UpdateDrag(s State, id VPID, x, y float64, snap *DragSnapshot) State {
	if snap == nil || snap.ID != id || !id.Valid() {
		return s
	}

	h := s.Handles[id.Index()]
	local := graphics.Pt(x, y).Sub(CanvasCenter(s))
	displacementX := local.X - handleRestX(s, h)

	switch id {
	case VP1, VP2:
		dist := snap.VPDist + ScreenDeltaToWorldDelta(s, displacementX-snap.HandleX)

		s.Handles[id.Index()].X = displacementX
		s.VanishingPoints[id.Index()].DistanceFromCenter = dist
	case VP3:
		displacementY := local.Y
		vpx := snap.VPX + ScreenDeltaToWorldDelta(s, displacementX-snap.HandleX)
		dist := snap.VPDist + ScreenDeltaToWorldDelta(s, displacementY-snap.HandleY)

		s.Handles[id.Index()].X = displacementX
		s.Handles[id.Index()].Y = displacementY
		s.VanishingPoints[id.Index()].X = vpx
		s.VanishingPoints[id.Index()].DistanceFromCenter = dist
		s.Config.ThirdPointOrientation = OrientationFor(dist)
	}
	return s
}

// HitTestReferenceHandle reports whether (x, y) grabs the reference image
// handle. The handle only exists for a visible, interactive image.
func HitTestReferenceHandle(s State, x, y float64, showUI bool) bool {
	if !showUI || s.Reference == nil || !s.Reference.IsVisible || !s.Reference.IsInteractive {
		return false
	}
	pos, _ := ReferenceHandlePosition(s)
	return pos.Dist(graphics.Pt(x, y)) < DefaultHitRadius
}

// ReferenceDragSnapshot captures the reference image offset and pointer
// position at drag start.
type ReferenceDragSnapshot struct {
	StartX, StartY   float64
	OffsetX, OffsetY float64
}

// BeginReferenceDrag snapshots the reference image for a drag starting at
// (x, y).
func BeginReferenceDrag(s State, x, y float64) (ReferenceDragSnapshot, bool) {
	if s.Reference == nil {
		return ReferenceDragSnapshot{}, false
	}
	return ReferenceDragSnapshot{
		StartX:  x,
		StartY:  y,
		OffsetX: s.Reference.OffsetX,
		OffsetY: s.Reference.OffsetY,
	}, true
}

// UpdateReferenceDrag pans the reference image so it follows the pointer.
// The handle shows the raw screen delta; the offset moves by that delta
// mapped back through every transform applied before the offset.
func UpdateReferenceDrag(s State, x, y float64, snap *ReferenceDragSnapshot) State {
	if snap == nil || s.Reference == nil {
		return s
	}
	screen := graphics.Pt(x-snap.StartX, y-snap.StartY)
	dx, dy := ReferenceLinear(*s.Reference, s.Camera).Inverse().TransformVector(screen.X, screen.Y)

	ref := *s.Reference
	ref.HandleX = screen.X
	ref.HandleY = screen.Y
	ref.OffsetX = snap.OffsetX + dx
	ref.OffsetY = snap.OffsetY + dy
	s.Reference = &ref
	return s
}

// ReferenceLinear returns the rotation/scale part of the reference image
// transform that precedes its offset: camera zoom and tilt when followed,
// then the manual scale and rotation.
func ReferenceLinear(ref ReferenceImage, cam Camera) graphics.Matrix {
	m := graphics.Identity()
	if ref.FollowZoom {
		m.Concat(graphics.Scale(cam.Zoom, cam.Zoom))
	}
	if ref.FollowHorizon {
		m.Concat(graphics.RotateDeg(cam.HorizonAngle))
	}
	m.Concat(graphics.Scale(ref.Scale, ref.Scale))
	m.Concat(graphics.RotateDeg(ref.Rotation))
	return m
}
