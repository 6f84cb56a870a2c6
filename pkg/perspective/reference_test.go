package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferenceImageDefaults(t *testing.T) {
	ref := NewReferenceImage("photo.jpg", 1.5)

	assert.Equal(t, 0.5, ref.Opacity)
	assert.Equal(t, 1.0, ref.Scale)
	assert.True(t, ref.IsVisible)
	assert.True(t, ref.FollowHorizon)
	assert.True(t, ref.FollowZoom)
	assert.False(t, ref.IsInteractive)
}

func TestSetReferenceImageProps(t *testing.T) {
	s := AttachReferenceImage(NewState(800, 600), NewReferenceImage("photo.jpg", 1.5))
	before := s

	s = SetReferenceImageProps(s,
		RefOpacity(2),
		RefScale(-1),
		RefRotation(45),
		RefFollowZoom(false),
	)
	require.NotNil(t, s.Reference)
	assert.Equal(t, 1.0, s.Reference.Opacity)
	assert.Equal(t, 1.0, s.Reference.Scale, "non-positive scale ignored")
	assert.Equal(t, 45.0, s.Reference.Rotation)
	assert.False(t, s.Reference.FollowZoom)

	assert.Equal(t, 0.5, before.Reference.Opacity)
	assert.NotSame(t, before.Reference, s.Reference)
}

func TestSetReferenceImagePropsWithoutImage(t *testing.T) {
	s := NewState(800, 600)
	assert.Equal(t, s, SetReferenceImageProps(s, RefOpacity(1)))
	assert.Equal(t, s, ResetReferenceImage(s))
}

func TestResetReferenceImage(t *testing.T) {
	s := AttachReferenceImage(NewState(800, 600), NewReferenceImage("photo.jpg", 1))
	s = SetReferenceImageProps(s,
		RefOpacity(0.2),
		RefScale(3),
		RefRotation(10),
		RefOffset(5, 6),
		RefFollowHorizon(false),
		RefVisible(false),
	)

	s = ResetReferenceImage(s)
	ref := s.Reference
	assert.Equal(t, 1.0, ref.Scale)
	assert.Zero(t, ref.Rotation)
	assert.Zero(t, ref.OffsetX)
	assert.True(t, ref.FollowHorizon)
	assert.Equal(t, 0.2, ref.Opacity)
	assert.False(t, ref.IsVisible)

	assert.Nil(t, ClearReferenceImage(s).Reference)
}
