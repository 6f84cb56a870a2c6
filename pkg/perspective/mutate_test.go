package perspective

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"vantage/pkg/graphics"
)

func TestSetGridConfigPreservesInactivePoints(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(ThreePoint))
	s = SetVanishingPointDistance(s, VP3, -500)
	s.VanishingPoints[VP3.Index()].X = 20
	want := s.VanishingPoints[VP3.Index()]

	s = SetGridConfig(s, WithType(OnePoint))
	s = SetGridConfig(s, WithType(ThreePoint))

	assert.Equal(t, want, s.VanishingPoints[VP3.Index()])
	assert.Equal(t, ThreePoint, s.Config.Type)
}

func TestSetGridConfigOnePointRules(t *testing.T) {
	s := SetVanishingPointDistance(NewState(800, 600), VP1, -500)

	s = SetGridConfig(s, WithType(OnePoint))
	assert.Zero(t, s.VanishingPoints[VP1.Index()].DistanceFromCenter, "far vp1 is centred")

	s = SetGridConfig(s, WithType(TwoPoint))
	assert.InDelta(t, -280, s.VanishingPoints[VP1.Index()].DistanceFromCenter, 1e-9, "centred vp1 is restored")
	assert.InDelta(t, 280, s.VanishingPoints[VP2.Index()].DistanceFromCenter, 1e-9)
}

func TestSetGridConfigOnePointKeepsNearVP1(t *testing.T) {
	s := SetVanishingPointDistance(NewState(800, 600), VP1, -120)
	s = SetGridConfig(s, WithType(OnePoint))
	assert.Equal(t, -120.0, s.VanishingPoints[VP1.Index()].DistanceFromCenter)

	s = SetGridConfig(s, WithType(TwoPoint))
	assert.Equal(t, -120.0, s.VanishingPoints[VP1.Index()].DistanceFromCenter)
}

func TestSetGridConfigOrientation(t *testing.T) {
	s := NewState(800, 600)

	s = SetGridConfig(s, WithOrientation(Bottom))
	assert.Equal(t, 1800.0, s.VanishingPoints[VP3.Index()].DistanceFromCenter)
	assert.Equal(t, Bottom, s.Config.ThirdPointOrientation)

	s = SetGridConfig(s, WithOrientation(Top))
	assert.Equal(t, -1800.0, s.VanishingPoints[VP3.Index()].DistanceFromCenter)

	// Same orientation again is a no-op.
	s = SetGridConfig(s, WithOrientation(Top))
	assert.Equal(t, -1800.0, s.VanishingPoints[VP3.Index()].DistanceFromCenter)
}

func TestSetGridConfigIgnoresInvalid(t *testing.T) {
	s := NewState(800, 600)
	next := SetGridConfig(s, WithType(GridType(7)), WithDensity("extreme"), WithOrientation("left"))
	assert.Equal(t, s, next)
}

func TestZoomClamp(t *testing.T) {
	s := NewState(800, 600)

	assert.Equal(t, MaxZoom, Zoom(s, 100).Camera.Zoom)
	assert.Equal(t, MinZoom, Zoom(s, -100).Camera.Zoom)
	assert.InDelta(t, 1.1, Zoom(s, 0.1).Camera.Zoom, 1e-12)
	assert.Equal(t, 1.0, Zoom(s, math.NaN()).Camera.Zoom)
}

func TestSetHorizonAngle(t *testing.T) {
	s := NewState(800, 600)

	assert.Equal(t, 30.0, SetHorizonAngle(s, 30).Camera.HorizonAngle)
	assert.Equal(t, 90.0, SetHorizonAngle(s, 200).Camera.HorizonAngle)
	assert.Equal(t, -90.0, SetHorizonAngle(s, -200).Camera.HorizonAngle)
	assert.Zero(t, SetHorizonAngle(s, math.NaN()).Camera.HorizonAngle)
}

func TestResetCamera(t *testing.T) {
	s := NewState(800, 600)
	s = Pan(s, 40, -20)
	s = Zoom(s, 2)
	s = MoveHorizon(s, 50)
	s = SetHorizonAngle(s, 15)
	s = SetVanishingPointDistance(s, VP2, 400)

	s = ResetCamera(s)
	assert.Equal(t, Camera{HorizonY: 300, HorizonAngle: 15, Zoom: 1}, s.Camera)
	assert.Equal(t, 400.0, s.VanishingPoints[VP2.Index()].DistanceFromCenter)
}

func TestResetAll(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(ThreePoint), WithDensity(High))
	s = AttachReferenceImage(s, NewReferenceImage("a.png", 1))
	s = Pan(s, 5, 5)

	assert.Equal(t, NewState(800, 600), ResetAll(s))
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	s := NewState(800, 600)
	before := s

	Pan(s, 1, 2)
	Zoom(s, 1)
	MoveHorizon(s, 10)
	SetHorizonAngle(s, 10)
	SetGridConfig(s, WithType(ThreePoint))
	SetVanishingPointDistance(s, VP1, 0)
	SetHandleDisplacement(s, VP1, graphics.Pt(3, 4))
	Resize(s, 10, 10)

	assert.Equal(t, before, s)
}

func TestHandleDisplacement(t *testing.T) {
	s := SetHandleDisplacement(NewState(800, 600), VP3, graphics.Pt(3, 4))
	assert.Equal(t, graphics.Pt(3, 4), HandleDisplacement(s, VP3))
	assert.Equal(t, graphics.Pt(0, 0), HandleDisplacement(s, VPID(5)))
}
