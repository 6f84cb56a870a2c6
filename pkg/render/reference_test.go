package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantage/pkg/graphics"
	"vantage/pkg/perspective"
)

func TestCoverSize(t *testing.T) {
	w, h := CoverSize(800, 600, 400, 300)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	// Wider image: match height, overflow width.
	w, h = CoverSize(800, 600, 200, 50)
	assert.Equal(t, 2400.0, w)
	assert.Equal(t, 600.0, h)

	// Taller image: match width, overflow height.
	w, h = CoverSize(800, 600, 100, 200)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 1600.0, h)
}

func assertMaps(t *testing.T, m graphics.Matrix, from, to graphics.Point) {
	t.Helper()
	got := m.TransformPoint(from)
	assert.InDelta(t, to.X, got.X, 1e-9)
	assert.InDelta(t, to.Y, got.Y, 1e-9)
}

func TestReferenceTransformCovers(t *testing.T) {
	ref := perspective.NewReferenceImage("r.png", 4.0/3)
	cam := perspective.NewState(800, 600).Camera

	m, ok := ReferenceTransform(ref, cam, 800, 600, image.Rect(0, 0, 400, 300))
	require.True(t, ok)

	assertMaps(t, m, graphics.Pt(0, 0), graphics.Pt(0, 0))
	assertMaps(t, m, graphics.Pt(400, 300), graphics.Pt(800, 600))
	assertMaps(t, m, graphics.Pt(200, 150), graphics.Pt(400, 300))
}

func TestReferenceTransformBoundsOrigin(t *testing.T) {
	ref := perspective.NewReferenceImage("r.png", 4.0/3)
	cam := perspective.NewState(800, 600).Camera

	m, ok := ReferenceTransform(ref, cam, 800, 600, image.Rect(10, 20, 410, 320))
	require.True(t, ok)
	assertMaps(t, m, graphics.Pt(10, 20), graphics.Pt(0, 0))
}

func TestReferenceTransformFollowsCamera(t *testing.T) {
	st := perspective.NewState(800, 600)
	st = perspective.Zoom(st, 1)
	ref := perspective.NewReferenceImage("r.png", 4.0/3)
	bounds := image.Rect(0, 0, 400, 300)

	m, _ := ReferenceTransform(ref, st.Camera, 800, 600, bounds)
	assertMaps(t, m, graphics.Pt(200, 150), graphics.Pt(400, 300))
	assertMaps(t, m, graphics.Pt(0, 0), graphics.Pt(-400, -300))

	ref.FollowZoom = false
	m, _ = ReferenceTransform(ref, st.Camera, 800, 600, bounds)
	assertMaps(t, m, graphics.Pt(0, 0), graphics.Pt(0, 0))
}

func TestReferenceTransformOffsetAfterScale(t *testing.T) {
	ref := perspective.NewReferenceImage("r.png", 4.0/3)
	ref.Scale = 2
	ref.OffsetX = 10
	cam := perspective.NewState(800, 600).Camera

	m, _ := ReferenceTransform(ref, cam, 800, 600, image.Rect(0, 0, 400, 300))
	// The offset is in pre-scale units.
	assertMaps(t, m, graphics.Pt(200, 150), graphics.Pt(420, 300))
}

func TestReferenceTransformEmpty(t *testing.T) {
	ref := perspective.NewReferenceImage("r.png", 1)
	cam := perspective.NewState(800, 600).Camera

	_, ok := ReferenceTransform(ref, cam, 0, 600, image.Rect(0, 0, 10, 10))
	assert.False(t, ok)
	_, ok = ReferenceTransform(ref, cam, 800, 600, image.Rect(0, 0, 0, 10))
	assert.False(t, ok)
}
