package render

import (
	"image"
	"image/color"

	"vantage/pkg/graphics"
	"vantage/pkg/perspective"
)

// Options control a single grid render.
type Options struct {
	// ShowUI draws vanishing point markers and handles on top of the lines.
	ShowUI bool
	// Reference is the decoded reference image. It is drawn only when the
	// state carries a visible ReferenceImage.
	Reference image.Image
}

// Handle and marker styling.
const (
	markerDotRadius  = 2.5
	markerRingRadius = 8.0
	markerRingWidth  = 1.0
	markerRingAlpha  = 0.3

	handleRadius       = 15.0
	handleFillAlpha    = 0.4
	handleRingWidth    = 1.5
	handleRingAlpha    = 0.8
	handleCenterRadius = 3.0
)

var (
	// Background is the paper colour under everything else.
	Background           = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ReferenceHandleColor = graphics.MustHex("#10b981")
	white                = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Render computes the guide lines for st and draws them.
func Render(s Surface, st perspective.State, opts Options) {
	RenderGrid(s, st, perspective.CalculateLines(st), opts)
}

// RenderGrid paints, back to front: the background, the reference image,
// the guide lines, and with ShowUI the vanishing point markers, the VP
// handles and the reference image handle.
func RenderGrid(s Surface, st perspective.State, lines []perspective.Line, opts Options) {
	s.Clear(Background)

	if opts.Reference != nil && st.Reference != nil && st.Reference.IsVisible {
		drawReference(s, st, opts.Reference)
	}

	for _, l := range lines {
		s.StrokeLine(l.Segment, graphics.WithAlpha(l.Color, l.EffectiveAlpha()), l.Width)
	}

	if !opts.ShowUI {
		return
	}

	vps := perspective.TransformedVanishingPoints(st)
	for _, id := range st.ActiveVPs() {
		p := vps[id.Index()].Point
		s.FillCircle(p, markerDotRadius, white)
		s.StrokeCircle(p, markerRingRadius, markerRingWidth, graphics.WithAlpha(perspective.VPColor(id), markerRingAlpha))
	}

	for _, id := range perspective.AllVPs {
		if !perspective.HandleVisible(st, id) {
			continue
		}
		drawHandle(s, perspective.HandlePosition(st, id), perspective.VPColor(id))
	}

	if ref := st.Reference; ref != nil && ref.IsVisible && ref.IsInteractive {
		if p, ok := perspective.ReferenceHandlePosition(st); ok {
			drawHandle(s, p, ReferenceHandleColor)
		}
	}
}

func drawHandle(s Surface, p graphics.Point, col color.NRGBA) {
	s.FillCircle(p, handleRadius, graphics.WithAlpha(col, handleFillAlpha))
	s.StrokeCircle(p, handleRadius, handleRingWidth, graphics.WithAlpha(white, handleRingAlpha))
	s.FillCircle(p, handleCenterRadius, white)
}

func drawReference(s Surface, st perspective.State, img image.Image) {
	ref := *st.Reference
	m, ok := ReferenceTransform(ref, st.Camera, st.CanvasWidth, st.CanvasHeight, img.Bounds())
	if !ok {
		return
	}
	s.DrawImage(img, m, ref.Opacity)
}
