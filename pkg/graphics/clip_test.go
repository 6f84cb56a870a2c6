package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-9

func TestClipLineInsideUnchanged(t *testing.T) {
	bounds := Viewport(800, 600)
	seg := Segment{X1: 10, Y1: 20, X2: 790, Y2: 580}

	got, ok := ClipLine(seg, bounds)
	require.True(t, ok)
	assert.Equal(t, seg, got)
}

func TestClipLineOutside(t *testing.T) {
	bounds := Viewport(800, 600)
	cases := map[string]Segment{
		"left":   {X1: -10, Y1: 0, X2: -1, Y2: 600},
		"right":  {X1: 801, Y1: 10, X2: 900, Y2: 20},
		"above":  {X1: 0, Y1: -5, X2: 800, Y2: -1},
		"below":  {X1: 0, Y1: 700, X2: 800, Y2: 601},
		"corner": {X1: -100, Y1: 50, X2: 50, Y2: -100},
	}
	for name, seg := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := ClipLine(seg, bounds)
			assert.False(t, ok)
		})
	}
}

func TestClipLineSingleBoundary(t *testing.T) {
	bounds := Viewport(800, 600)

	got, ok := ClipLine(Segment{X1: 400, Y1: 300, X2: 1200, Y2: 500}, bounds)
	require.True(t, ok)
	assert.True(t, scalar.EqualWithinAbs(got.X2, 800, eps), "x2 = %v", got.X2)
	assert.True(t, scalar.EqualWithinAbs(got.Y2, 400, eps), "y2 = %v", got.Y2)
	assert.Equal(t, 400.0, got.X1)
	assert.Equal(t, 300.0, got.Y1)

	got, ok = ClipLine(Segment{X1: 100, Y1: -300, X2: 100, Y2: 300}, bounds)
	require.True(t, ok)
	assert.True(t, scalar.EqualWithinAbs(got.Y1, 0, eps))
	assert.True(t, scalar.EqualWithinAbs(got.X1, 100, eps))
}

func TestClipLineThroughBothSides(t *testing.T) {
	bounds := Viewport(100, 100)
	got, ok := ClipLine(Segment{X1: -1e6, Y1: 50, X2: 1e6, Y2: 50}, bounds)
	require.True(t, ok)
	assert.True(t, scalar.EqualWithinAbs(got.X1, 0, eps))
	assert.True(t, scalar.EqualWithinAbs(got.X2, 100, eps))
	assert.Equal(t, 50.0, got.Y1)
}

func TestClipLineDegenerateBounds(t *testing.T) {
	seg := Segment{X1: 0, Y1: 0, X2: 10, Y2: 10}

	_, ok := ClipLine(seg, Viewport(0, 0))
	assert.False(t, ok)

	_, ok = ClipLine(seg, Viewport(math.NaN(), 100))
	assert.False(t, ok)

	_, ok = ClipLine(Segment{X1: math.NaN(), Y1: 1, X2: 2, Y2: 3}, Viewport(10, 10))
	assert.False(t, ok)
}
