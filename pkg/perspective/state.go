// Package perspective is the geometry engine behind the grid: vanishing
// point and camera state, world-to-screen transforms, guide line generation
// and handle interaction. Every operation is a pure function that returns a
// new State; nothing here mutates its input.
package perspective

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned by Validate.
var ErrInvalidState = errors.New("invalid state")

// Default placement and limits.
const (
	defaultSideRatio   = 0.35 // vp1/vp2 distance as a fraction of canvas width
	defaultVP3Ratio    = -3.0 // vp3 distance as a multiple of canvas height
	defaultHandleRestX = 150.0

	MinZoom = 0.1
	MaxZoom = 5.0

	MinHorizonAngle = -90.0
	MaxHorizonAngle = 90.0
)

// VanishingPoint is one of the three world-space convergence points.
type VanishingPoint struct {
	ID VPID `json:"id"`
	// DistanceFromCenter is measured along the horizon for vp1/vp2 and
	// perpendicular to it for vp3. Negative is left (vp1/vp2) or above (vp3).
	DistanceFromCenter float64 `json:"distanceFromCenter"`
	// X is vp3's sideways drift off the vertical centre line.
	X float64 `json:"x"`
}

// Handle is the fixed-screen control knob bound to a vanishing point.
type Handle struct {
	ID    VPID    `json:"id"`
	RestX float64 `json:"restX"`
	// X and Y are the visual displacement from rest while dragging or
	// returning.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridConfig selects which vanishing points are active and how dense the
// guide lines are.
type GridConfig struct {
	Type                  GridType    `json:"type"`
	ThirdPointOrientation Orientation `json:"thirdPointOrientation"`
	Density               Density     `json:"density"`
}

// Camera is the pan/zoom/tilt applied to all world-space geometry.
type Camera struct {
	HorizonY     float64 `json:"horizonY"`
	HorizonAngle float64 `json:"horizonAngle"` // degrees
	PanX         float64 `json:"panX"`
	PanY         float64 `json:"panY"`
	Zoom         float64 `json:"zoom"`
}

// ReferenceImage configures the optional overlay drawn beneath the grid.
type ReferenceImage struct {
	URL         string  `json:"url"`
	AspectRatio float64 `json:"aspectRatio"`
	Opacity     float64 `json:"opacity"`
	Scale       float64 `json:"scale"`
	Rotation    float64 `json:"rotation"` // degrees
	OffsetX     float64 `json:"offsetX"`
	OffsetY     float64 `json:"offsetY"`

	FollowHorizon bool `json:"followHorizon"`
	FollowZoom    bool `json:"followZoom"`
	IsVisible     bool `json:"isVisible"`
	IsInteractive bool `json:"isInteractive"`

	// HandleX and HandleY displace the drag handle while dragging; they
	// always return to zero after release.
	HandleX float64 `json:"handleX"`
	HandleY float64 `json:"handleY"`
}

// State is the aggregate root of the grid.
type State struct {
	VanishingPoints [vpCount]VanishingPoint `json:"vanishingPoints"`
	Handles         [vpCount]Handle         `json:"handles"`
	Config          GridConfig              `json:"config"`
	Camera          Camera                  `json:"camera"`
	CanvasWidth     float64                 `json:"canvasWidth"`
	CanvasHeight    float64                 `json:"canvasHeight"`
	// Reference is shared between copies of State and must be replaced,
	// never modified in place.
	Reference *ReferenceImage `json:"referenceImage,omitempty"`
}

// NewState returns the default grid for a canvas: two-point perspective with
// vp1/vp2 at 35% of the width either side of centre and vp3 far above.
func NewState(width, height float64) State {
	return State{
		VanishingPoints: [vpCount]VanishingPoint{
			{ID: VP1, DistanceFromCenter: -width * defaultSideRatio},
			{ID: VP2, DistanceFromCenter: width * defaultSideRatio},
			{ID: VP3, DistanceFromCenter: height * defaultVP3Ratio},
		},
		Handles: [vpCount]Handle{
			{ID: VP1, RestX: -defaultHandleRestX},
			{ID: VP2, RestX: defaultHandleRestX},
			{ID: VP3, RestX: 0},
		},
		Config: GridConfig{
			Type:                  TwoPoint,
			ThirdPointOrientation: Top,
			Density:               Medium,
		},
		Camera:       defaultCamera(height),
		CanvasWidth:  width,
		CanvasHeight: height,
	}
}

func defaultCamera(height float64) Camera {
	return Camera{
		HorizonY: height / 2,
		Zoom:     1,
	}
}

// VanishingPoint returns the point in slot id.
func (s State) VanishingPoint(id VPID) (VanishingPoint, bool) {
	if !id.Valid() {
		return VanishingPoint{}, false
	}
	return s.VanishingPoints[id.Index()], true
}

// Handle returns the handle bound to id.
func (s State) Handle(id VPID) (Handle, bool) {
	if !id.Valid() {
		return Handle{}, false
	}
	return s.Handles[id.Index()], true
}

// ActiveVPs returns the slots that take part in the current grid type.
func (s State) ActiveVPs() []VPID {
	ids := make([]VPID, 0, vpCount)
	for _, id := range AllVPs {
		if s.Config.Type.Active(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Validate checks a State that came from outside the package, for example
// decoded JSON: a positive canvas, a known grid type, zoom within
// [MinZoom, MaxZoom] and every slot bound to its own VPID.
func Validate(s State) error {
	if !(s.CanvasWidth > 0) || !(s.CanvasHeight > 0) {
		return fmt.Errorf("%w: canvas size %vx%v", ErrInvalidState, s.CanvasWidth, s.CanvasHeight)
	}
	if !s.Config.Type.Valid() {
		return fmt.Errorf("%w: grid type %d", ErrInvalidState, s.Config.Type)
	}
	if !(s.Camera.Zoom >= MinZoom && s.Camera.Zoom <= MaxZoom) {
		return fmt.Errorf("%w: zoom %v", ErrInvalidState, s.Camera.Zoom)
	}
	for i, id := range AllVPs {
		if s.VanishingPoints[i].ID != id || s.Handles[i].ID != id {
			return fmt.Errorf("%w: slot %d must be %s", ErrInvalidState, i, id)
		}
	}
	return nil
}
