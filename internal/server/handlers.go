package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"vantage/pkg/graphics"
	"vantage/pkg/perspective"
	"vantage/pkg/raster"
	"vantage/pkg/render"
)

const (
	maxBodySize   = 1 << 20
	maxCanvasSide = 8192
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type lineJSON struct {
	Kind  perspective.LineKind `json:"kind"`
	X1    float64              `json:"x1"`
	Y1    float64              `json:"y1"`
	X2    float64              `json:"x2"`
	Y2    float64              `json:"y2"`
	Color string               `json:"color"`
	Alpha float64              `json:"alpha"`
	Width float64              `json:"width"`
}

type linesResponse struct {
	Lines  []lineJSON     `json:"lines"`
	Counts map[string]int `json:"counts"`
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	st, ok := s.decodeState(w, r)
	if !ok {
		return
	}

	lines := perspective.CalculateLines(st)
	resp := linesResponse{
		Lines:  make([]lineJSON, len(lines)),
		Counts: make(map[string]int),
	}
	for i, l := range lines {
		resp.Lines[i] = lineJSON{
			Kind:  l.Kind,
			X1:    l.X1,
			Y1:    l.Y1,
			X2:    l.X2,
			Y2:    l.Y2,
			Color: graphics.Hex(l.Color),
			Alpha: l.EffectiveAlpha(),
			Width: l.Width,
		}
	}
	for kind, n := range perspective.CountLines(lines) {
		resp.Counts[kind.String()] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRender draws the state at its own canvas size. ?ui=1 includes handles.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	st, ok := s.decodeState(w, r)
	if !ok {
		return
	}

	c := raster.NewCanvas(int(st.CanvasWidth), int(st.CanvasHeight))
	render.Render(c, st, render.Options{ShowUI: showUI(r)})
	s.writePNG(w, r, c, "")
}

// handleExport renders at the export size, overridable with ?width=&height=.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	st, ok := s.decodeState(w, r)
	if !ok {
		return
	}

	opts := s.cfg.ExportOptions()
	q := r.URL.Query()
	for key, dst := range map[string]*int{"width": &opts.Width, "height": &opts.Height} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxCanvasSide {
			http.Error(w, fmt.Sprintf("invalid %s %q", key, v), http.StatusBadRequest)
			return
		}
		*dst = n
	}
	if name := q.Get("name"); name != "" {
		opts.Name = sanitizeName(name)
	}

	c, err := render.ExportCanvas(st, nil, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writePNG(w, r, c, opts.Name+".png")
}

// handleCommands returns the draw calls of a render as JSON.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	st, ok := s.decodeState(w, r)
	if !ok {
		return
	}

	rec := render.NewRecorder()
	render.Render(rec, st, render.Options{ShowUI: showUI(r)})
	writeJSON(w, http.StatusOK, rec)
}

// decodeState reads a JSON state from the body. An empty body yields the
// configured default state.
func (s *Server) decodeState(w http.ResponseWriter, r *http.Request) (perspective.State, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
		return perspective.State{}, false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return s.cfg.InitialState(), true
	}

	var st perspective.State
	if err := json.Unmarshal(body, &st); err != nil {
		http.Error(w, fmt.Sprintf("%v: %v", perspective.ErrInvalidState, err), http.StatusBadRequest)
		return perspective.State{}, false
	}
	if err := validateState(st); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return perspective.State{}, false
	}
	return st, true
}

func validateState(st perspective.State) error {
	if err := perspective.Validate(st); err != nil {
		return err
	}
	if st.CanvasWidth > maxCanvasSide || st.CanvasHeight > maxCanvasSide {
		return fmt.Errorf("%w: canvas size %vx%v", perspective.ErrInvalidState, st.CanvasWidth, st.CanvasHeight)
	}
	return nil
}

func showUI(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("ui"))
	return v
}

func (s *Server) writePNG(w http.ResponseWriter, r *http.Request, c *raster.Canvas, filename string) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		s.logger.Error("encode png", "error", err, "request_id", RequestID(r.Context()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}
