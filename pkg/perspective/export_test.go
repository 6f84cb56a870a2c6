package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleForExport(t *testing.T) {
	s := SetVanishingPointDistance(NewState(800, 600), VP1, -280)
	s.VanishingPoints[VP3.Index()].X = 100
	s = Pan(s, 10, 10)

	out := ScaleForExport(s, ExportWidth, ExportHeight)

	assert.Equal(t, 1920.0, out.CanvasWidth)
	assert.Equal(t, 1080.0, out.CanvasHeight)
	assert.InDelta(t, -672, out.VanishingPoints[VP1.Index()].DistanceFromCenter, 1e-9)
	assert.InDelta(t, 672, out.VanishingPoints[VP2.Index()].DistanceFromCenter, 1e-9)
	assert.InDelta(t, -3240, out.VanishingPoints[VP3.Index()].DistanceFromCenter, 1e-9)
	assert.InDelta(t, 240, out.VanishingPoints[VP3.Index()].X, 1e-9)
	assert.InDelta(t, 540, out.Camera.HorizonY, 1e-9)
	assert.InDelta(t, 24, out.Camera.PanX, 1e-9)
	assert.InDelta(t, 18, out.Camera.PanY, 1e-9)
	assert.Equal(t, 1.0, out.Camera.Zoom)

	// The source state is untouched.
	assert.Equal(t, 800.0, s.CanvasWidth)
	assert.Equal(t, -280.0, s.VanishingPoints[VP1.Index()].DistanceFromCenter)
}

func TestScaleForExportKeepsRelativeLayout(t *testing.T) {
	s := NewState(800, 600)
	out := ScaleForExport(s, 1600, 1200)

	vp := WorldToScreen(s, VP2)
	scaled := WorldToScreen(out, VP2)
	assert.InDelta(t, vp.X*2, scaled.X, 1e-9)
	assert.InDelta(t, vp.Y*2, scaled.Y, 1e-9)
}

func TestScaleForExportReference(t *testing.T) {
	s := AttachReferenceImage(NewState(800, 600), NewReferenceImage("r.png", 1))
	s = SetReferenceImageProps(s, RefOffset(100, 60))

	out := ScaleForExport(s, 1600, 300)
	assert.Equal(t, 200.0, out.Reference.OffsetX)
	assert.Equal(t, 30.0, out.Reference.OffsetY)
	assert.Equal(t, 100.0, s.Reference.OffsetX)
}

func TestScaleForExportDegenerate(t *testing.T) {
	s := NewState(0, 0)
	out := ScaleForExport(s, 1920, 1080)
	assert.Equal(t, 1920.0, out.CanvasWidth)
	assert.Equal(t, s.VanishingPoints, out.VanishingPoints)
}
