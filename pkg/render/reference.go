package render

import (
	"image"

	"vantage/pkg/graphics"
	"vantage/pkg/perspective"
)

// CoverSize returns the size at which an iw×ih image exactly covers a cw×ch
// canvas while keeping its aspect ratio.
func CoverSize(cw, ch, iw, ih float64) (w, h float64) {
	imgRatio := iw / ih
	if imgRatio > cw/ch {
		return ch * imgRatio, ch
	}
	return cw, cw / imgRatio
}

// ReferenceTransform maps reference image pixels inside bounds onto the
// canvas. The image is sized to cover the canvas and centred on it, then
// moved by the offset, rotated and scaled manually, and finally tilted and
// zoomed with the camera when it follows it. It returns false when the
// canvas or image is empty.
func ReferenceTransform(ref perspective.ReferenceImage, cam perspective.Camera, cw, ch float64, bounds image.Rectangle) (graphics.Matrix, bool) {
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if cw <= 0 || ch <= 0 || iw <= 0 || ih <= 0 {
		return graphics.Matrix{}, false
	}
	dw, dh := CoverSize(cw, ch, iw, ih)

	m := graphics.Translate(cw/2, ch/2)
	m.Concat(perspective.ReferenceLinear(ref, cam))
	m.Concat(graphics.Translate(ref.OffsetX, ref.OffsetY))
	m.Concat(graphics.Translate(-dw/2, -dh/2))
	m.Concat(graphics.Scale(dw/iw, dh/ih))
	m.Concat(graphics.Translate(-float64(bounds.Min.X), -float64(bounds.Min.Y)))
	return m, true
}
