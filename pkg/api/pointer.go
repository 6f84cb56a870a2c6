package api

import (
	"vantage/pkg/graphics"
	"vantage/pkg/perspective"
)

// Target is what a pointer press grabbed.
type Target int

const (
	TargetNone Target = iota
	TargetHandle
	TargetReference
	TargetPan
)

func (t Target) String() string {
	switch t {
	case TargetHandle:
		return "handle"
	case TargetReference:
		return "reference"
	case TargetPan:
		return "pan"
	}
	return "none"
}

// wheelZoomStep is the zoom change per wheel notch.
const wheelZoomStep = 0.1

// HitTest returns the visible handle under (x, y).
func (s *Session) HitTest(x, y float64) (perspective.VPID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return perspective.HitTestRadius(s.state, x, y, s.showUI, s.opts.HitRadius)
}

// PointerDown starts an interaction at (x, y): a VP handle drag if a handle
// is hit, otherwise a reference image drag if its handle is hit, otherwise
// a camera pan.
func (s *Session) PointerDown(x, y float64) Target {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := perspective.HitTestRadius(s.state, x, y, s.showUI, s.opts.HitRadius); ok {
		s.beginDragLocked(id)
		return TargetHandle
	}

	if perspective.HitTestReferenceHandle(s.state, x, y, s.showUI) {
		if snap, ok := perspective.BeginReferenceDrag(s.state, x, y); ok {
			s.refReturn.Cancel()
			s.refDrag = &snap
			return TargetReference
		}
	}

	s.panning = true
	s.lastPan = graphics.Pt(x, y)
	return TargetPan
}

// PointerMove continues the interaction started by PointerDown. Without one
// it does nothing.
func (s *Session) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.drag != nil:
		s.updateDragLocked(x, y)
	case s.refDrag != nil:
		s.setLocked(perspective.UpdateReferenceDrag(s.state, x, y, s.refDrag))
	case s.panning:
		p := graphics.Pt(x, y)
		d := p.Sub(s.lastPan)
		s.lastPan = p
		s.setLocked(perspective.Pan(s.state, d.X, d.Y))
	}
}

// PointerUp ends the current interaction and sends released handles home.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.drag != nil:
		s.endDragLocked()
	case s.refDrag != nil:
		s.endReferenceDragLocked()
	}
	s.panning = false
}

// Wheel zooms by one step per event. dy follows the browser convention:
// positive scrolls down and zooms out.
func (s *Session) Wheel(dy float64) {
	switch {
	case dy > 0:
		s.Zoom(-wheelZoomStep)
	case dy < 0:
		s.Zoom(wheelZoomStep)
	}
}

// BeginDrag starts dragging the handle for id regardless of the pointer
// position. It fails for unknown or hidden handles.
func (s *Session) BeginDrag(id perspective.VPID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.showUI || !perspective.HandleVisible(s.state, id) {
		return false
	}
	return s.beginDragLocked(id)
}

// UpdateDrag moves the dragged handle to (x, y).
func (s *Session) UpdateDrag(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateDragLocked(x, y)
}

// EndDrag releases the dragged handle.
func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endDragLocked()
}

// Dragging returns the handle being dragged.
func (s *Session) Dragging() (perspective.VPID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag == nil {
		return 0, false
	}
	return s.drag.ID, true
}

func (s *Session) beginDragLocked(id perspective.VPID) bool {
	snap, ok := perspective.BeginDrag(s.state, id)
	if !ok {
		return false
	}
	// A handle grabbed on its way home stops where it is.
	s.returns[id.Index()].Cancel()
	s.drag = &snap
	s.logger.Debug("drag started", "vp", id)
	return true
}

func (s *Session) updateDragLocked(x, y float64) {
	if s.drag == nil {
		return
	}
	s.setLocked(perspective.UpdateDrag(s.state, s.drag.ID, x, y, s.drag))
}

func (s *Session) endDragLocked() {
	if s.drag == nil {
		return
	}
	id := s.drag.ID
	s.drag = nil

	from := perspective.HandleDisplacement(s.state, id)
	a := &s.returns[id.Index()]
	a.Start(s.opts.Clock(), from, graphics.Point{}, s.opts.ReturnDuration)
	if !a.Animating() {
		s.setLocked(perspective.SetHandleDisplacement(s.state, id, graphics.Point{}))
	}

	vp, _ := s.state.VanishingPoint(id)
	s.logger.Debug("drag ended", "vp", id, "distance", vp.DistanceFromCenter)
}

// endReferenceDragLocked releases the reference handle and sends it home.
func (s *Session) endReferenceDragLocked() {
	if s.refDrag == nil {
		return
	}
	s.refDrag = nil

	ref := s.state.Reference
	if ref == nil {
		return
	}
	from := graphics.Pt(ref.HandleX, ref.HandleY)
	s.refReturn.Start(s.opts.Clock(), from, graphics.Point{}, s.opts.ReturnDuration)
	if !s.refReturn.Animating() {
		s.setLocked(perspective.SetReferenceHandleDisplacement(s.state, graphics.Point{}))
	}
}
