package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boundsTolerance = 1e-6

func assertInsideCanvas(t *testing.T, s State, lines []Line) {
	t.Helper()
	for _, l := range lines {
		for _, p := range [][2]float64{{l.X1, l.Y1}, {l.X2, l.Y2}} {
			assert.GreaterOrEqual(t, p[0], -boundsTolerance)
			assert.LessOrEqual(t, p[0], s.CanvasWidth+boundsTolerance)
			assert.GreaterOrEqual(t, p[1], -boundsTolerance)
			assert.LessOrEqual(t, p[1], s.CanvasHeight+boundsTolerance)
		}
	}
}

func TestCalculateLinesTwoPoint(t *testing.T) {
	s := NewState(800, 600)
	lines := CalculateLines(s)
	require.NotEmpty(t, lines)

	assert.Equal(t, LineHorizon, lines[0].Kind)

	counts := CountLines(lines)
	fan := len(GeometricAngles(Medium))
	assert.Equal(t, 1, counts[LineHorizon])
	// Both points sit on the canvas, so every fan line crosses it.
	assert.Equal(t, fan, counts[LineVP1])
	assert.Equal(t, fan, counts[LineVP2])
	assert.Zero(t, counts[LineVP3])

	assertInsideCanvas(t, s, lines)
}

func TestCalculateLinesHorizonSpansCanvas(t *testing.T) {
	s := NewState(800, 600)
	h := CalculateLines(s)[0]

	assert.InDelta(t, 0, h.X1, 1e-9)
	assert.InDelta(t, 800, h.X2, 1e-9)
	assert.InDelta(t, 300, h.Y1, 1e-9)
	assert.InDelta(t, 300, h.Y2, 1e-9)
}

func TestCalculateLinesHorizonAlwaysPresent(t *testing.T) {
	s := MoveHorizon(NewState(800, 600), 5000)
	counts := CountLines(CalculateLines(s))
	assert.Equal(t, 1, counts[LineHorizon])

	s = SetGridConfig(NewState(0, 0), WithType(ThreePoint))
	counts = CountLines(CalculateLines(s))
	assert.Equal(t, 1, counts[LineHorizon])
}

func TestCalculateLinesOnePoint(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(OnePoint))
	counts := CountLines(CalculateLines(s))

	assert.Equal(t, len(GeometricAngles(Medium)), counts[LineVP1])
	assert.Zero(t, counts[LineVP2])
	assert.Zero(t, counts[LineVP3])
}

func TestCalculateLinesVP3AtCenter(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(ThreePoint), WithDensity(High))
	s = SetVanishingPointDistance(s, VP3, 0)
	s.VanishingPoints[VP3.Index()].X = 0

	lines := CalculateLines(s)
	counts := CountLines(lines)
	assert.Equal(t, 384, counts[LineVP3])
	assertInsideCanvas(t, s, lines)
}

func TestCalculateLinesVP3FarAway(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(ThreePoint))
	s = SetVanishingPointDistance(s, VP3, -100000)

	counts := CountLines(CalculateLines(s))
	assert.Positive(t, counts[LineVP3])
}

func TestCalculateLinesStyles(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(ThreePoint))
	s = SetVanishingPointDistance(s, VP3, 0)

	seen := map[LineKind]Line{}
	for _, l := range CalculateLines(s) {
		seen[l.Kind] = l
	}
	require.Len(t, seen, 4)

	assert.Equal(t, ColorHorizon, seen[LineHorizon].Color)
	assert.Equal(t, 1.5, seen[LineHorizon].Width)
	assert.Equal(t, EmphasisStrong, seen[LineHorizon].Emphasis)
	assert.Equal(t, 1.0, seen[LineHorizon].EffectiveAlpha())

	assert.Equal(t, ColorVP1, seen[LineVP1].Color)
	assert.Equal(t, ColorVP2, seen[LineVP2].Color)
	assert.Equal(t, 0.75, seen[LineVP1].EffectiveAlpha())

	assert.Equal(t, ColorVP3, seen[LineVP3].Color)
	assert.InDelta(t, 0.9, seen[LineVP3].EffectiveAlpha(), 1e-12)
}

func TestCalculateLinesDoesNotMutate(t *testing.T) {
	s := NewState(800, 600)
	before := s
	CalculateLines(s)
	assert.Equal(t, before, s)
}
