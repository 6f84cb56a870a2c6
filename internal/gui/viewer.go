package gui

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"vantage/pkg/api"
	"vantage/pkg/raster"
)

// frameInterval paces the redraw loop. Frames are only drawn when the
// session has something new to show.
const frameInterval = time.Second / 60

// GridView is the interactive grid surface: pointer input drives the
// session, and the session is drawn whenever it changes.
type GridView struct {
	widget.BaseWidget

	session *api.Session
	raster  *canvas.Raster

	mu  sync.Mutex
	buf *raster.Canvas

	ticker *fyne.Animation

	// OnChange is called after input that changed the camera.
	OnChange func()
}

var (
	_ fyne.Draggable    = (*GridView)(nil)
	_ fyne.Scrollable   = (*GridView)(nil)
	_ desktop.Mouseable = (*GridView)(nil)
)

// NewGridView creates a view of s.
func NewGridView(s *api.Session) *GridView {
	v := &GridView{session: s}
	v.ExtendBaseWidget(v)

	v.raster = canvas.NewRaster(v.draw)
	v.raster.ScaleMode = canvas.ImageScaleSmooth

	v.ticker = fyne.NewAnimation(frameInterval, v.tick)
	v.ticker.RepeatCount = fyne.AnimationRepeatForever
	v.ticker.Curve = fyne.AnimationLinear

	return v
}

// Start begins the redraw loop.
func (v *GridView) Start() {
	v.session.Invalidate()
	v.ticker.Start()
}

// Stop ends the redraw loop.
func (v *GridView) Stop() {
	v.ticker.Stop()
}

func (v *GridView) tick(float32) {
	if v.session.Dirty() || v.session.Animating() {
		v.raster.Refresh()
	}
}

// draw renders the session at its canvas size. The raster scales the result
// to the device pixels it asked for.
func (v *GridView) draw(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := v.session.State()
	cw, ch := int(st.CanvasWidth), int(st.CanvasHeight)
	if cw <= 0 || ch <= 0 {
		cw, ch = w, h
	}

	if v.buf == nil || v.buf.Width() != cw || v.buf.Height() != ch {
		v.buf = raster.NewCanvas(cw, ch)
		v.session.Invalidate()
	}
	v.session.Frame(time.Now(), v.buf)

	return v.buf.Image()
}

// Resize keeps the session canvas the size of the widget.
func (v *GridView) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	if size.Width > 0 && size.Height > 0 {
		v.session.Resize(float64(size.Width), float64(size.Height))
	}
}

// MinSize returns the smallest usable drawing area.
func (v *GridView) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

// MouseDown starts a handle drag, reference drag or pan.
func (v *GridView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	v.session.PointerDown(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseUp ends whatever MouseDown started.
func (v *GridView) MouseUp(*desktop.MouseEvent) {
	v.session.PointerUp()
	v.changed()
}

// Dragged continues the current interaction.
func (v *GridView) Dragged(ev *fyne.DragEvent) {
	v.session.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

// DragEnd ends the current interaction.
func (v *GridView) DragEnd() {
	v.session.PointerUp()
	v.changed()
}

// Scrolled zooms one step per wheel event. Fyne reports scrolling up as a
// positive DY, the opposite of the session's convention.
func (v *GridView) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY == 0 {
		return
	}
	v.session.Wheel(-float64(ev.Scrolled.DY))
	v.changed()
}

func (v *GridView) changed() {
	if v.OnChange != nil {
		v.OnChange()
	}
}

// CreateRenderer creates the renderer for this widget.
func (v *GridView) CreateRenderer() fyne.WidgetRenderer {
	return &gridViewRenderer{view: v}
}

type gridViewRenderer struct {
	view *GridView
}

func (r *gridViewRenderer) Layout(size fyne.Size) {
	r.view.raster.Move(fyne.NewPos(0, 0))
	r.view.raster.Resize(size)
}

func (r *gridViewRenderer) MinSize() fyne.Size {
	return r.view.MinSize()
}

func (r *gridViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.raster}
}

func (r *gridViewRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *gridViewRenderer) Destroy() {}
