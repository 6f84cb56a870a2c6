package perspective

import (
	"fmt"
	"image/color"
	"math"

	"vantage/pkg/graphics"
)

// LineKind tags which set a guide line belongs to.
type LineKind int

const (
	LineHorizon LineKind = iota
	LineVP1
	LineVP2
	LineVP3
)

func (k LineKind) String() string {
	switch k {
	case LineHorizon:
		return "horizon"
	case LineVP1:
		return "vp1"
	case LineVP2:
		return "vp2"
	case LineVP3:
		return "vp3"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LineKind) UnmarshalText(b []byte) error {
	for _, v := range []LineKind{LineHorizon, LineVP1, LineVP2, LineVP3} {
		if v.String() == string(b) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown line kind %q", string(b))
}

// lineKindFor maps a slot to its line set.
func lineKindFor(id VPID) LineKind {
	switch id {
	case VP1:
		return LineVP1
	case VP2:
		return LineVP2
	case VP3:
		return LineVP3
	}
	return LineHorizon
}

// Emphasis asks the renderer to draw a line more prominently than its alpha
// alone would.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisRaised
	EmphasisStrong
)

// Boost returns the alpha multiplier the renderer applies for e.
func (e Emphasis) Boost() float64 {
	switch e {
	case EmphasisRaised:
		return 1.2
	case EmphasisStrong:
		return 1.35
	}
	return 1
}

// Line is one drawable guide line. Lines are regenerated every frame and are
// not part of State.
type Line struct {
	graphics.Segment
	Kind     LineKind    `json:"kind"`
	Color    color.NRGBA `json:"-"`
	Alpha    float64     `json:"alpha"`
	Width    float64     `json:"width"`
	Emphasis Emphasis    `json:"emphasis"`
}

// EffectiveAlpha is the alpha after emphasis, capped at 1.
func (l Line) EffectiveAlpha() float64 {
	return math.Min(1, l.Alpha*l.Emphasis.Boost())
}

// Line colors per set.
var (
	ColorVP1     = graphics.MustHex("#90CEE0")
	ColorVP2     = graphics.MustHex("#EDC687")
	ColorVP3     = graphics.MustHex("#E8CAED")
	ColorHorizon = graphics.MustHex("#ff0000")
)

// VPColor returns the color coding for a slot.
func VPColor(id VPID) color.NRGBA {
	switch id {
	case VP1:
		return ColorVP1
	case VP2:
		return ColorVP2
	case VP3:
		return ColorVP3
	}
	return ColorHorizon
}

const (
	radialAlpha  = 0.75
	radialWidth  = 1.0
	horizonAlpha = 1.0
	horizonWidth = 1.5

	horizonLengthFactor = 3 // times the canvas diagonal, each side of centre
	fanLengthFactor     = 5 // times the canvas diagonal, each side of the VP
)

// CalculateLines generates every guide line for the state, clipped to the
// canvas: exactly one horizon line followed by the fans of the active
// vanishing points.
func CalculateLines(s State) []Line {
	w, h := s.CanvasWidth, s.CanvasHeight
	bounds := graphics.Viewport(w, h)
	diagonal := math.Hypot(w, h)
	theta := s.horizonRadians()
	vps := TransformedVanishingPoints(s)

	lines := []Line{horizonLine(s, bounds, diagonal, theta)}

	for _, id := range []VPID{VP1, VP2} {
		if !s.Config.Type.Active(id) {
			continue
		}
		angles := GeometricAngles(s.Config.Density)
		for i := range angles {
			angles[i] += theta
		}
		lines = appendFan(lines, vps[id.Index()].Point, angles, diagonal*fanLengthFactor, bounds, radialLine(id))
	}

	if s.Config.Type == ThreePoint {
		vp3 := vps[VP3.Index()].Point
		base := diagonal * fanLengthFactor
		// vp3 can sit many canvases away; the fan must still cross the view.
		reach := math.Max(base, vp3.Dist(CanvasCenter(s))*2+base)
		lines = appendFan(lines, vp3, VP3Angles(s.Config.Density, theta), reach, bounds, radialLine(VP3))
	}

	return lines
}

func horizonLine(s State, bounds graphics.Rect, diagonal, theta float64) Line {
	center := ScreenCenter(s)
	half := diagonal * horizonLengthFactor
	dir := graphics.Pt(math.Cos(theta), math.Sin(theta)).Scale(half)

	seg := graphics.Seg(center.Sub(dir), center.Add(dir))
	if clipped, ok := graphics.ClipLine(seg, bounds); ok {
		seg = clipped
	}
	return Line{
		Segment:  seg,
		Kind:     LineHorizon,
		Color:    ColorHorizon,
		Alpha:    horizonAlpha,
		Width:    horizonWidth,
		Emphasis: EmphasisStrong,
	}
}

// radialLine returns the style template for a slot's fan.
func radialLine(id VPID) Line {
	l := Line{
		Kind:  lineKindFor(id),
		Color: VPColor(id),
		Alpha: radialAlpha,
		Width: radialWidth,
	}
	if id == VP3 {
		l.Emphasis = EmphasisRaised
	}
	return l
}

// appendFan adds one clipped line through vp per angle, reaching out to
// reach in both directions. Lines entirely outside bounds are dropped.
func appendFan(lines []Line, vp graphics.Point, angles []float64, reach float64, bounds graphics.Rect, style Line) []Line {
	for _, a := range angles {
		dir := graphics.Pt(math.Cos(a), math.Sin(a)).Scale(reach)
		seg, ok := graphics.ClipLine(graphics.Seg(vp.Add(dir), vp.Sub(dir)), bounds)
		if !ok {
			continue
		}
		l := style
		l.Segment = seg
		lines = append(lines, l)
	}
	return lines
}

// CountLines tallies lines per kind.
func CountLines(lines []Line) map[LineKind]int {
	counts := make(map[LineKind]int, 4)
	for _, l := range lines {
		counts[l.Kind]++
	}
	return counts
}
