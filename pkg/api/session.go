// Package api provides the stateful entry point a UI shell drives: it owns
// the grid state, turns pointer input into drags and pans, runs the handle
// return animations and coalesces redraws into frames.
package api

import (
	"image"
	"log/slog"
	"sync"
	"time"

	"vantage/pkg/graphics"
	"vantage/pkg/perspective"
	"vantage/pkg/render"
)

// Session is safe for concurrent use. Every update replaces the state
// value, so a State returned earlier is never affected by later updates.
type Session struct {
	mu sync.Mutex

	state  perspective.State
	showUI bool
	opts   SessionOptions
	logger *slog.Logger

	// Cached guide lines for state; nil when stale.
	lines []perspective.Line

	// Redraw requested since the last frame.
	dirty bool

	drag    *perspective.DragSnapshot
	refDrag *perspective.ReferenceDragSnapshot
	panning bool
	lastPan graphics.Point

	returns   [3]perspective.ReturnAnimation
	refReturn perspective.ReturnAnimation

	refImage image.Image
	// Incremented whenever the reference image is replaced or removed so
	// that a slower load cannot overwrite a newer one.
	refSeq uint64
}

// NewSession creates a session for a width×height canvas.
func NewSession(width, height float64, opts ...Option) *Session {
	o := NewSessionOptions(opts...)

	st := perspective.NewState(width, height)
	if len(o.Grid) > 0 {
		st = perspective.SetGridConfig(st, o.Grid...)
	}

	return &Session{
		state:  st,
		showUI: o.ShowUI,
		opts:   o,
		logger: o.Logger,
		dirty:  true,
	}
}

// State returns the current state.
func (s *Session) State() perspective.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Lines returns the guide lines for the current state.
func (s *Session) Lines() []perspective.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesLocked()
}

func (s *Session) linesLocked() []perspective.Line {
	if s.lines == nil {
		s.lines = perspective.CalculateLines(s.state)
	}
	return s.lines
}

// setLocked installs next and schedules a redraw.
func (s *Session) setLocked(next perspective.State) {
	s.state = next
	s.lines = nil
	s.dirty = true
}

// Update applies fn to the state. It is the escape hatch for any pure
// perspective operation not wrapped by a Session method.
func (s *Session) Update(fn func(perspective.State) perspective.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(fn(s.state))
}

// Replace swaps in a whole state, for example one decoded from JSON.
// Drags in progress are dropped.
func (s *Session) Replace(st perspective.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelInteractionLocked()
	s.setLocked(st)
}

// Resize changes the canvas size and keeps everything else.
func (s *Session) Resize(width, height float64) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.Resize(st, width, height)
	})
}

// SetGridConfig changes the grid type, density or vp3 orientation.
func (s *Session) SetGridConfig(opts ...perspective.ConfigOption) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.SetGridConfig(st, opts...)
	})
}

// SetGridType sets the number of vanishing points.
func (s *Session) SetGridType(t perspective.GridType) {
	s.SetGridConfig(perspective.WithType(t))
}

// SetDensity sets the line density.
func (s *Session) SetDensity(d perspective.Density) {
	s.SetGridConfig(perspective.WithDensity(d))
}

// SetOrientation places vp3 above or below the horizon.
func (s *Session) SetOrientation(o perspective.Orientation) {
	s.SetGridConfig(perspective.WithOrientation(o))
}

// SetHorizonAngle tilts the horizon in degrees.
func (s *Session) SetHorizonAngle(deg float64) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.SetHorizonAngle(st, deg)
	})
}

// MoveHorizon shifts the horizon vertically.
func (s *Session) MoveHorizon(dy float64) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.MoveHorizon(st, dy)
	})
}

// Pan moves the camera by a screen delta.
func (s *Session) Pan(dx, dy float64) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.Pan(st, dx, dy)
	})
}

// Zoom changes the zoom level by delta.
func (s *Session) Zoom(delta float64) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.Zoom(st, delta)
	})
}

// SetVanishingPointDistance places a vanishing point directly.
func (s *Session) SetVanishingPointDistance(id perspective.VPID, d float64) {
	s.Update(func(st perspective.State) perspective.State {
		return perspective.SetVanishingPointDistance(st, id, d)
	})
}

// ResetCamera recentres the camera.
func (s *Session) ResetCamera() {
	s.Update(perspective.ResetCamera)
}

// ResetAll restores the default grid and drops the reference image.
func (s *Session) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelInteractionLocked()
	s.refImage = nil
	s.refSeq++
	s.setLocked(perspective.ResetAll(s.state))
	s.logger.Debug("grid reset")
}

// ShowUI reports whether handles and markers are visible.
func (s *Session) ShowUI() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showUI
}

// SetShowUI switches between the editing view and the clean view. Hiding
// the UI releases any handle drag, and the handle slides back to rest as if
// the pointer had been lifted.
func (s *Session) SetShowUI(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if show == s.showUI {
		return
	}
	s.showUI = show
	if !show {
		s.endDragLocked()
		s.endReferenceDragLocked()
	}
	s.dirty = true
}

// ToggleUI flips the clean view and returns the new visibility.
func (s *Session) ToggleUI() bool {
	s.mu.Lock()
	show := !s.showUI
	s.mu.Unlock()

	s.SetShowUI(show)
	return show
}

// cancelInteractionLocked abandons drags, pans and animations.
func (s *Session) cancelInteractionLocked() {
	s.drag = nil
	s.refDrag = nil
	s.panning = false
	for i := range s.returns {
		s.returns[i].Cancel()
	}
	s.refReturn.Cancel()
}

// Invalidate requests a redraw on the next frame.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

// Dirty reports whether a redraw is pending.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Tick advances the return animations to now. It reports whether any
// animation is still running.
func (s *Session) Tick(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickLocked(now)
}

func (s *Session) tickLocked(now time.Time) bool {
	running := false
	next := s.state

	for i, id := range perspective.AllVPs {
		a := &s.returns[i]
		if !a.Animating() {
			continue
		}
		p, done := a.Step(now)
		next = perspective.SetHandleDisplacement(next, id, p)
		running = running || !done
	}

	if s.refReturn.Animating() {
		p, done := s.refReturn.Step(now)
		next = perspective.SetReferenceHandleDisplacement(next, p)
		running = running || !done
	}

	if next != s.state {
		// Handle displacement does not change any guide line.
		s.state = next
		s.dirty = true
	}
	return running
}

// Animating reports whether a handle is sliding back to rest.
func (s *Session) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.returns {
		if s.returns[i].Animating() {
			return true
		}
	}
	return s.refReturn.Animating()
}

// Frame advances animations to now and, if anything changed since the last
// frame, renders onto surface. Any number of updates between two frames
// cost a single render. It reports whether it drew.
func (s *Session) Frame(now time.Time, surface render.Surface) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickLocked(now)
	if !s.dirty {
		return false
	}
	s.renderLocked(surface)
	s.dirty = false
	return true
}
