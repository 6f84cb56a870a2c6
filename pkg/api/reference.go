package api

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	// Reference image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"vantage/pkg/perspective"
)

var (
	// ErrNoReferenceImage is returned by reference operations when no
	// image is attached.
	ErrNoReferenceImage = errors.New("no reference image")
	// ErrDecode wraps every reference image decoding failure.
	ErrDecode = errors.New("cannot decode reference image")
	// ErrSuperseded is returned by a load that finished after a newer
	// load, a clear or a reset.
	ErrSuperseded = errors.New("reference image load superseded")
)

// LoadReferenceImage decodes an image from r and attaches it as the
// reference image with default settings. name is recorded as its URL. On
// any failure the session is left unchanged.
func (s *Session) LoadReferenceImage(ctx context.Context, name string, r io.Reader) error {
	s.mu.Lock()
	s.refSeq++
	seq := s.refSeq
	s.mu.Unlock()

	return s.loadReference(ctx, seq, name, r)
}

// LoadReferenceImageAsync decodes in the background and calls done, if not
// nil, with the result. It returns immediately.
func (s *Session) LoadReferenceImageAsync(ctx context.Context, name string, r io.Reader, done func(error)) {
	s.mu.Lock()
	s.refSeq++
	seq := s.refSeq
	s.mu.Unlock()

	go func() {
		err := s.loadReference(ctx, seq, name, r)
		if done != nil {
			done(err)
		}
	}()
}

func (s *Session) loadReference(ctx context.Context, seq uint64, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	img, format, err := image.Decode(r)
	if err != nil {
		s.logger.Warn("reference image decode failed", "name", name, "error", err)
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: empty image", ErrDecode)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.refSeq {
		return ErrSuperseded
	}
	s.refImage = img
	s.refReturn.Cancel()
	s.refDrag = nil
	ref := perspective.NewReferenceImage(name, float64(b.Dx())/float64(b.Dy()))
	s.setLocked(perspective.AttachReferenceImage(s.state, ref))

	s.logger.Info("reference image loaded", "name", name, "format", format, "width", b.Dx(), "height", b.Dy())
	return nil
}

// ReferenceImage returns the decoded reference image, or nil.
func (s *Session) ReferenceImage() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refImage
}

// SetReferenceImageProps changes reference image settings.
func (s *Session) SetReferenceImageProps(opts ...perspective.ReferenceOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Reference == nil {
		return ErrNoReferenceImage
	}
	s.setLocked(perspective.SetReferenceImageProps(s.state, opts...))
	return nil
}

// ResetReferenceImage clears the manual transform of the reference image.
func (s *Session) ResetReferenceImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Reference == nil {
		return ErrNoReferenceImage
	}
	s.refReturn.Cancel()
	s.refDrag = nil
	s.setLocked(perspective.ResetReferenceImage(s.state))
	return nil
}

// ClearReferenceImage removes the reference image and cancels pending
// loads.
func (s *Session) ClearReferenceImage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refSeq++
	s.refImage = nil
	s.refReturn.Cancel()
	s.refDrag = nil
	s.setLocked(perspective.ClearReferenceImage(s.state))
}
