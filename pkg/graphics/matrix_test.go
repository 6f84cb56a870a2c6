package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestConcatAppliesInnermostFirst(t *testing.T) {
	// translate(100, 0) then scale(2): a drawing context maps (1, 0) to (102, 0).
	m := Identity()
	m.Concat(Translate(100, 0))
	m.Concat(Scale(2, 2))

	x, y := m.Transform(1, 0)
	assert.Equal(t, 102.0, x)
	assert.Equal(t, 0.0, y)
}

func TestRotateDegClockwiseOnScreen(t *testing.T) {
	x, y := RotateDeg(90).Transform(1, 0)
	assert.True(t, scalar.EqualWithinAbs(x, 0, 1e-12))
	assert.True(t, scalar.EqualWithinAbs(y, 1, 1e-12))
}

func TestInverseRoundTrip(t *testing.T) {
	m := Identity()
	m.Concat(Translate(30, -4))
	m.Concat(RotateDeg(33))
	m.Concat(Scale(1.5, 0.5))

	p := m.Inverse().TransformPoint(m.TransformPoint(Pt(7, 11)))
	assert.True(t, scalar.EqualWithinAbs(p.X, 7, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(p.Y, 11, 1e-9))

	assert.Equal(t, Identity(), Scale(0, 1).Inverse())
}

func TestAff3Layout(t *testing.T) {
	m := Matrix{1, 2, 3, 4, 5, 6}
	a := m.Aff3()
	x, y := m.Transform(1, 1)
	assert.Equal(t, x, a[0]+a[1]+a[2])
	assert.Equal(t, y, a[3]+a[4]+a[5])
}

func TestPointRotate(t *testing.T) {
	p := Pt(0, -10).Rotate(math.Pi / 2)
	assert.True(t, scalar.EqualWithinAbs(p.X, 10, 1e-12))
	assert.True(t, scalar.EqualWithinAbs(p.Y, 0, 1e-12))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#90CEE0")
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x90), c.R)
	assert.Equal(t, uint8(0xff), c.A)

	c, err = ParseHex("#ff000080")
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseHex("nope")
	assert.Error(t, err)

	assert.Equal(t, "#90cee0", Hex(MustHex("#90CEE0")))
	assert.Equal(t, uint8(128), WithAlpha(MustHex("#000"), 0.5).A)
}
