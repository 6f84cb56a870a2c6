package api

import (
	"image"
	"io"

	"vantage/pkg/perspective"
	"vantage/pkg/raster"
	"vantage/pkg/render"
)

// Render draws the current state onto surface.
func (s *Session) Render(surface render.Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderLocked(surface)
}

func (s *Session) renderLocked(surface render.Surface) {
	render.RenderGrid(surface, s.state, s.linesLocked(), render.Options{
		ShowUI:    s.showUI,
		Reference: s.refImage,
	})
}

// RenderImage draws the current state onto a new image the size of the
// canvas.
func (s *Session) RenderImage() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := raster.NewCanvas(int(s.state.CanvasWidth), int(s.state.CanvasHeight))
	s.renderLocked(c)
	return c.Image()
}

// exportSource is what an export renders, captured under the lock so the
// slow encode runs without it.
type exportSource struct {
	state perspective.State
	ref   image.Image
}

func (s *Session) snapshot() exportSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return exportSource{state: s.state, ref: s.refImage}
}

// Export writes the current grid as PNG at the export resolution, without
// handles or markers.
func (s *Session) Export(w io.Writer, opts render.ExportOptions) error {
	snap := s.snapshot()
	if err := render.Export(w, snap.state, snap.ref, opts); err != nil {
		return err
	}
	s.logger.Info("grid exported", "name", opts.Name)
	return nil
}

// ExportFile writes the export into dir and returns the file path.
func (s *Session) ExportFile(dir string, opts render.ExportOptions) (string, error) {
	snap := s.snapshot()
	path, err := render.ExportFile(dir, snap.state, snap.ref, opts)
	if err != nil {
		return "", err
	}
	s.logger.Info("grid exported", "path", path)
	return path, nil
}
