package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vantage/pkg/graphics"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(800, 600)

	assert.InDelta(t, -280, s.VanishingPoints[VP1.Index()].DistanceFromCenter, 1e-9)
	assert.InDelta(t, 280, s.VanishingPoints[VP2.Index()].DistanceFromCenter, 1e-9)
	assert.Equal(t, -1800.0, s.VanishingPoints[VP3.Index()].DistanceFromCenter)
	assert.Equal(t, TwoPoint, s.Config.Type)
	assert.Equal(t, Medium, s.Config.Density)
	assert.Equal(t, Top, s.Config.ThirdPointOrientation)
	assert.Equal(t, Camera{HorizonY: 300, Zoom: 1}, s.Camera)
	assert.Equal(t, []float64{-150, 150, 0}, []float64{s.Handles[0].RestX, s.Handles[1].RestX, s.Handles[2].RestX})
	for i, id := range AllVPs {
		assert.Equal(t, id, s.VanishingPoints[i].ID)
		assert.Equal(t, id, s.Handles[i].ID)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(NewState(800, 600)))

	tests := []struct {
		name   string
		modify func(*State)
	}{
		{"zero width", func(s *State) { s.CanvasWidth = 0 }},
		{"negative height", func(s *State) { s.CanvasHeight = -1 }},
		{"unknown grid type", func(s *State) { s.Config.Type = 7 }},
		{"zoom too small", func(s *State) { s.Camera.Zoom = 0 }},
		{"zoom too large", func(s *State) { s.Camera.Zoom = MaxZoom + 1 }},
		{"swapped slots", func(s *State) {
			s.VanishingPoints[0], s.VanishingPoints[1] = s.VanishingPoints[1], s.VanishingPoints[0]
		}},
		{"wrong handle id", func(s *State) { s.Handles[2].ID = VP1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(800, 600)
			tt.modify(&s)
			assert.ErrorIs(t, Validate(s), ErrInvalidState)
		})
	}
}

func TestWorldToScreenIdentityCamera(t *testing.T) {
	s := NewState(800, 600)
	s = SetVanishingPointDistance(s, VP1, -123)

	assert.Equal(t, graphics.Pt(400-123, 300), WorldToScreen(s, VP1))

	p := WorldToScreen(s, VP2)
	assert.InDelta(t, 680, p.X, 1e-9)
	assert.Equal(t, 300.0, p.Y)
}

func TestWorldToScreenCamera(t *testing.T) {
	s := NewState(800, 600)
	s = Pan(s, 10, 20)
	s = Zoom(s, 1) // zoom 2

	p := WorldToScreen(s, VP2)
	assert.InDelta(t, 400+10+560, p.X, 1e-9)
	assert.InDelta(t, 300+20, p.Y, 1e-9)

	s = SetHorizonAngle(s, 90)
	p = WorldToScreen(s, VP2)
	assert.InDelta(t, 410, p.X, 1e-9)
	assert.InDelta(t, 320+560, p.Y, 1e-9)
}

func TestWorldToScreenVP3TiltsWithHorizon(t *testing.T) {
	s := NewState(800, 600)
	s.VanishingPoints[VP3.Index()].X = 50
	s = SetVanishingPointDistance(s, VP3, -1000)

	p := WorldToScreen(s, VP3)
	assert.InDelta(t, 450, p.X, 1e-9)
	assert.InDelta(t, -700, p.Y, 1e-9)

	// Tilted 90°: "up" turns into "right", the sideways offset turns "down".
	s = SetHorizonAngle(s, 90)
	p = WorldToScreen(s, VP3)
	assert.InDelta(t, 400+1000, p.X, 1e-9)
	assert.InDelta(t, 300+50, p.Y, 1e-9)
}

func TestWorldToScreenUnknownID(t *testing.T) {
	s := NewState(800, 600)
	assert.Equal(t, ScreenCenter(s), WorldToScreen(s, VPID(9)))
}

func TestHandlePositionIgnoresCamera(t *testing.T) {
	s := NewState(800, 600)
	before := HandlePosition(s, VP2)

	s = Pan(s, 100, 100)
	s = Zoom(s, 2)
	s = SetHorizonAngle(s, 30)
	assert.Equal(t, before, HandlePosition(s, VP2))
	assert.Equal(t, graphics.Pt(550, 300), before)
}

func TestHandlePositionSoloVP1Centred(t *testing.T) {
	s := SetGridConfig(NewState(800, 600), WithType(OnePoint))
	assert.Equal(t, graphics.Pt(400, 300), HandlePosition(s, VP1))
}

func TestScreenDeltaToWorldDelta(t *testing.T) {
	s := NewState(800, 600)
	assert.Equal(t, 10.0, ScreenDeltaToWorldDelta(s, 10))
	s = Zoom(s, 1)
	assert.Equal(t, 5.0, ScreenDeltaToWorldDelta(s, 10))
}
