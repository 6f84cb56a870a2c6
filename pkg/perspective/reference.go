package perspective

import "vantage/pkg/graphics"

// ReferenceOption changes one property of a ReferenceImage.
type ReferenceOption func(*ReferenceImage)

// RefOpacity sets the image opacity, clamped to [0, 1].
func RefOpacity(v float64) ReferenceOption {
	return func(r *ReferenceImage) { r.Opacity = graphics.Clamp(v, 0, 1) }
}

// RefScale sets the manual scale. Non-positive scales are ignored.
func RefScale(v float64) ReferenceOption {
	return func(r *ReferenceImage) {
		if v > 0 {
			r.Scale = v
		}
	}
}

// RefRotation sets the manual rotation in degrees.
func RefRotation(deg float64) ReferenceOption {
	return func(r *ReferenceImage) { r.Rotation = deg }
}

// RefOffset sets the manual pan.
func RefOffset(x, y float64) ReferenceOption {
	return func(r *ReferenceImage) {
		r.OffsetX = x
		r.OffsetY = y
	}
}

// RefFollowHorizon makes the image tilt with the horizon.
func RefFollowHorizon(on bool) ReferenceOption {
	return func(r *ReferenceImage) { r.FollowHorizon = on }
}

// RefFollowZoom makes the image scale with the camera zoom.
func RefFollowZoom(on bool) ReferenceOption {
	return func(r *ReferenceImage) { r.FollowZoom = on }
}

// RefVisible shows or hides the image.
func RefVisible(on bool) ReferenceOption {
	return func(r *ReferenceImage) { r.IsVisible = on }
}

// RefInteractive shows or hides the image drag handle.
func RefInteractive(on bool) ReferenceOption {
	return func(r *ReferenceImage) { r.IsInteractive = on }
}

// RefHandle sets the drag handle displacement.
func RefHandle(p graphics.Point) ReferenceOption {
	return func(r *ReferenceImage) {
		r.HandleX = p.X
		r.HandleY = p.Y
	}
}

// NewReferenceImage returns the defaults for a freshly loaded image: half
// opacity, visible, following the camera, no handle.
func NewReferenceImage(url string, aspectRatio float64) ReferenceImage {
	return ReferenceImage{
		URL:           url,
		AspectRatio:   aspectRatio,
		Opacity:       0.5,
		Scale:         1,
		FollowHorizon: true,
		FollowZoom:    true,
		IsVisible:     true,
	}
}

// AttachReferenceImage installs a new reference image, replacing any
// existing one.
func AttachReferenceImage(s State, ref ReferenceImage) State {
	s.Reference = &ref
	return s
}

// SetReferenceImageProps applies opts to the reference image. Without an
// image the state is returned unchanged.
func SetReferenceImageProps(s State, opts ...ReferenceOption) State {
	if s.Reference == nil {
		return s
	}
	ref := *s.Reference
	for _, opt := range opts {
		opt(&ref)
	}
	s.Reference = &ref
	return s
}

// ResetReferenceImage clears the manual transform and handle and re-enables
// camera following. Opacity and visibility are kept.
func ResetReferenceImage(s State) State {
	if s.Reference == nil {
		return s
	}
	ref := *s.Reference
	ref.Scale = 1
	ref.Rotation = 0
	ref.OffsetX = 0
	ref.OffsetY = 0
	ref.HandleX = 0
	ref.HandleY = 0
	ref.FollowHorizon = true
	ref.FollowZoom = true
	s.Reference = &ref
	return s
}

// ClearReferenceImage removes the reference image.
func ClearReferenceImage(s State) State {
	s.Reference = nil
	return s
}

// SetReferenceHandleDisplacement moves the reference image drag handle
// without touching the image offset.
func SetReferenceHandleDisplacement(s State, p graphics.Point) State {
	return SetReferenceImageProps(s, RefHandle(p))
}
