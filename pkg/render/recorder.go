package render

import (
	"encoding/json"
	"image"
	"image/color"

	"vantage/pkg/graphics"
)

// Draw operations recorded by a Recorder.
const (
	OpClear        = "clear"
	OpLine         = "line"
	OpFillCircle   = "fillCircle"
	OpStrokeCircle = "strokeCircle"
	OpImage        = "image"
)

// Command is one recorded draw call. Colors are "#rrggbb" with the alpha
// split out so a canvas 2D client can set globalAlpha directly.
type Command struct {
	Op          string    `json:"op"`
	Color       string    `json:"color,omitempty"`
	Alpha       float64   `json:"alpha,omitempty"`
	Width       float64   `json:"width,omitempty"`
	X1          float64   `json:"x1,omitempty"`
	Y1          float64   `json:"y1,omitempty"`
	X2          float64   `json:"x2,omitempty"`
	Y2          float64   `json:"y2,omitempty"`
	X           float64   `json:"x,omitempty"`
	Y           float64   `json:"y,omitempty"`
	Radius      float64   `json:"radius,omitempty"`
	Transform   []float64 `json:"transform,omitempty"` // [a b c d e f]
	Opacity     float64   `json:"opacity,omitempty"`
	ImageWidth  int       `json:"imageWidth,omitempty"`
	ImageHeight int       `json:"imageHeight,omitempty"`
}

// Recorder is a Surface that keeps draw calls in painter's order.
type Recorder struct {
	commands []Command
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(bg color.Color) {
	r.commands = append(r.commands, withColor(Command{Op: OpClear}, bg))
}

func (r *Recorder) StrokeLine(s graphics.Segment, col color.Color, width float64) {
	r.commands = append(r.commands, withColor(Command{
		Op:    OpLine,
		Width: width,
		X1:    s.X1,
		Y1:    s.Y1,
		X2:    s.X2,
		Y2:    s.Y2,
	}, col))
}

func (r *Recorder) FillCircle(center graphics.Point, radius float64, col color.Color) {
	r.commands = append(r.commands, withColor(Command{
		Op:     OpFillCircle,
		X:      center.X,
		Y:      center.Y,
		Radius: radius,
	}, col))
}

func (r *Recorder) StrokeCircle(center graphics.Point, radius, width float64, col color.Color) {
	r.commands = append(r.commands, withColor(Command{
		Op:     OpStrokeCircle,
		X:      center.X,
		Y:      center.Y,
		Radius: radius,
		Width:  width,
	}, col))
}

func (r *Recorder) DrawImage(img image.Image, m graphics.Matrix, opacity float64) {
	cmd := Command{
		Op:        OpImage,
		Transform: append([]float64(nil), m[:]...),
		Opacity:   opacity,
	}
	if img != nil {
		cmd.ImageWidth = img.Bounds().Dx()
		cmd.ImageHeight = img.Bounds().Dy()
	}
	r.commands = append(r.commands, cmd)
}

// Commands returns the recorded calls.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// MarshalJSON encodes the command list as a JSON array.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	if r.commands == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.commands)
}

func withColor(c Command, col color.Color) Command {
	if col == nil {
		return c
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.Color = graphics.Hex(n)
	c.Alpha = float64(n.A) / 0xff
	return c
}
