package perspective

// Default export resolution.
const (
	ExportWidth  = 1920
	ExportHeight = 1080
)

// ScaleForExport re-targets the state at a width×height canvas. Horizontal
// quantities scale by the width ratio and vertical ones by the height ratio;
// vp3's distance is vertical, its sideways offset horizontal. Zoom and
// angles are ratios and stay as they are. A degenerate source canvas is
// only resized.
func ScaleForExport(s State, width, height float64) State {
	if !(s.CanvasWidth > 0) || !(s.CanvasHeight > 0) {
		return Resize(s, width, height)
	}

	rx := width / s.CanvasWidth
	ry := height / s.CanvasHeight

	s.CanvasWidth = width
	s.CanvasHeight = height

	s.Camera.HorizonY *= ry
	s.Camera.PanX *= rx
	s.Camera.PanY *= ry

	for i := range s.VanishingPoints {
		vp := &s.VanishingPoints[i]
		switch vp.ID {
		case VP1, VP2:
			vp.DistanceFromCenter *= rx
		case VP3:
			vp.DistanceFromCenter *= ry
			vp.X *= rx
		}
	}

	if s.Reference != nil {
		ref := *s.Reference
		ref.OffsetX *= rx
		ref.OffsetY *= ry
		s.Reference = &ref
	}
	return s
}
