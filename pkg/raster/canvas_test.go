package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantage/pkg/graphics"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(20, 10)
	assert.Equal(t, 20, c.Width())
	assert.Equal(t, 10, c.Height())
	assert.True(t, isWhite(c.Image().At(19, 9)))

	empty := NewCanvas(-5, 3)
	assert.Equal(t, 0, empty.Width())
	empty.FillCircle(graphics.Pt(0, 0), 5, red)
	empty.StrokeLine(graphics.Segment{X2: 10, Y2: 10}, red, 2)
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(graphics.Pt(10, 10), 5, red)

	r, g, _, _ := c.Image().At(10, 10).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
	assert.True(t, isWhite(c.Image().At(1, 1)))
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	c := NewCanvas(20, 20)
	c.StrokeCircle(graphics.Pt(10, 10), 6, 2, blue)

	assert.True(t, isWhite(c.Image().At(10, 10)))

	r, _, b, _ := c.Image().At(15, 10).RGBA()
	assert.Greater(t, b, uint32(0xc000))
	assert.Less(t, r, uint32(0x6000))
}

func TestStrokeLine(t *testing.T) {
	c := NewCanvas(20, 20)
	c.StrokeLine(graphics.Segment{X1: 0, Y1: 10, X2: 20, Y2: 10}, red, 2)

	for _, y := range []int{9, 10} {
		_, g, _, _ := c.Image().At(5, y).RGBA()
		assert.Less(t, g, uint32(0x1000), "row %d", y)
	}
	assert.True(t, isWhite(c.Image().At(5, 3)))
	assert.True(t, isWhite(c.Image().At(5, 13)))
}

func TestStrokeLineIgnoresDegenerate(t *testing.T) {
	c := NewCanvas(10, 10)
	c.StrokeLine(graphics.Segment{X1: 5, Y1: 5, X2: 5, Y2: 5}, red, 2)
	c.StrokeLine(graphics.Segment{X1: 0, Y1: 0, X2: 10, Y2: 10}, red, 0)
	c.StrokeLine(graphics.Segment{X1: math.NaN(), Y1: 0, X2: 10, Y2: 10}, red, 1)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.True(t, isWhite(c.Image().At(x, y)))
		}
	}
}

func TestFillPathOffCanvas(t *testing.T) {
	c := NewCanvas(10, 10)
	p := graphics.NewPath()
	p.Rect(100, 100, 5, 5)
	c.FillPath(p, red)
	assert.True(t, isWhite(c.Image().At(9, 9)))
}

func TestDrawImageOpacity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, red)
		}
	}

	c := NewCanvas(8, 8)
	c.DrawImage(img, graphics.Identity(), 0.5)

	r, g, _, _ := c.Image().At(1, 1).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.InDelta(t, 0x7fff, g, 0x400)
	assert.True(t, isWhite(c.Image().At(6, 6)))
}

func TestDrawImageTransform(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, blue)
		}
	}

	c := NewCanvas(16, 16)
	c.DrawImage(img, graphics.Scale(2, 2), 1)

	_, g, b, _ := c.Image().At(5, 5).RGBA()
	assert.Greater(t, b, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
	assert.True(t, isWhite(c.Image().At(12, 12)))

	// Singular transforms and zero opacity draw nothing.
	c.Clear(nil)
	c.DrawImage(img, graphics.Scale(0, 2), 1)
	c.DrawImage(img, graphics.Identity(), 0)
	assert.True(t, isWhite(c.Image().At(1, 1)))
}

func TestEncodePNG(t *testing.T) {
	c := NewCanvas(12, 7)
	c.Clear(blue)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 7), img.Bounds())

	_, _, b, _ := img.At(3, 3).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}
