// Package gui provides the desktop perspective grid editor using Fyne.
package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"

	"vantage/internal/config"
	"vantage/pkg/api"
	"vantage/pkg/perspective"
)

const (
	// Camera steps for keyboard control.
	panStep     = 20.0
	horizonStep = 10.0
	angleStep   = 1.0
	zoomStep    = 0.1
)

// App represents the grid editor application.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	logger  *slog.Logger

	// ctx bounds background reference image loads.
	ctx    context.Context
	cancel context.CancelFunc

	session *api.Session

	// UI components
	view    *GridView
	toolbar *Toolbar
	refBar  *ReferenceBar
	status  *StatusBar
}

// NewApp creates a new grid editor application.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return newApp(app.New(), cfg, logger)
}

func newApp(fa fyne.App, cfg *config.Config, logger *slog.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		fyneApp: fa,
		cfg:     cfg,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		session: api.NewSession(
			float64(cfg.CanvasWidth), float64(cfg.CanvasHeight),
			api.Logger(logger),
			api.Grid(perspective.WithType(cfg.GridType), perspective.WithDensity(cfg.Density)),
		),
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.window = a.fyneApp.NewWindow("Vantage")
	a.window.Resize(fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight)+120))

	a.buildUI()
	return a
}

// Run starts the application.
func (a *App) Run() {
	a.view.Start()
	a.window.ShowAndRun()
}

// RunWithReference starts the application with a reference image loading.
func (a *App) RunWithReference(path string) {
	f, err := os.Open(path)
	if err != nil {
		a.logger.Error("failed to open reference image", "path", path, "error", err)
		a.status.SetStatus(fmt.Sprintf("Cannot open %s", filepath.Base(path)))
	} else {
		a.loadReference(filepath.Base(path), f)
	}
	a.Run()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.view = NewGridView(a.session)
	a.view.OnChange = a.sync

	a.toolbar = NewToolbar()
	a.toolbar.OnGridType = func(t perspective.GridType) { a.apply(func() { a.session.SetGridType(t) }) }
	a.toolbar.OnDensity = func(d perspective.Density) { a.apply(func() { a.session.SetDensity(d) }) }
	a.toolbar.OnOrientation = func(o perspective.Orientation) { a.apply(func() { a.session.SetOrientation(o) }) }
	a.toolbar.OnAngle = func(deg float64) { a.apply(func() { a.session.SetHorizonAngle(deg) }) }
	a.toolbar.OnZoomIn = func() { a.apply(func() { a.session.Zoom(zoomStep) }) }
	a.toolbar.OnZoomOut = func() { a.apply(func() { a.session.Zoom(-zoomStep) }) }
	a.toolbar.OnResetCamera = func() { a.apply(a.session.ResetCamera) }
	a.toolbar.OnResetAll = func() { a.apply(a.session.ResetAll) }
	a.toolbar.OnShowUI = func(show bool) { a.apply(func() { a.session.SetShowUI(show) }) }
	a.toolbar.OnExport = a.exportGrid

	a.refBar = NewReferenceBar()
	a.refBar.OnLoad = a.openReference
	a.refBar.OnClear = func() { a.apply(a.session.ClearReferenceImage) }
	a.refBar.OnReset = func() {
		a.apply(func() {
			if err := a.session.ResetReferenceImage(); err != nil {
				a.logger.Debug("reference reset ignored", "error", err)
			}
		})
	}
	a.refBar.OnProps = func(opt perspective.ReferenceOption) {
		if err := a.session.SetReferenceImageProps(opt); err != nil {
			a.logger.Debug("reference change ignored", "error", err)
		}
	}

	a.status = NewStatusBar()

	top := container.NewVBox(
		container.NewPadded(a.toolbar.Container()),
		container.NewPadded(a.refBar.Container()),
	)

	content := container.NewBorder(
		top,                  // Top
		a.status.Container(), // Bottom
		nil,                  // Left
		nil,                  // Right
		a.view,               // Center
	)

	a.window.SetContent(content)
	a.window.SetOnClosed(func() {
		a.view.Stop()
		a.cancel()
	})

	// Set up keyboard shortcuts
	a.window.Canvas().SetOnTypedKey(a.handleKey)
	a.window.Canvas().SetOnTypedRune(a.handleRune)

	a.sync()
}

// apply runs a session change and refreshes the controls.
func (a *App) apply(fn func()) {
	fn()
	a.sync()
}

// sync updates every control from the session.
func (a *App) sync() {
	st := a.session.State()
	a.toolbar.Sync(st, a.session.ShowUI())
	a.refBar.Sync(st.Reference)
	a.status.SetCamera(st.Camera)
}

// handleKey handles camera navigation.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft:
		a.apply(func() { a.session.Pan(-panStep, 0) })
	case fyne.KeyRight:
		a.apply(func() { a.session.Pan(panStep, 0) })
	case fyne.KeyUp:
		a.apply(func() { a.session.Pan(0, -panStep) })
	case fyne.KeyDown:
		a.apply(func() { a.session.Pan(0, panStep) })
	case fyne.KeyPageUp:
		a.apply(func() { a.session.MoveHorizon(-horizonStep) })
	case fyne.KeyPageDown:
		a.apply(func() { a.session.MoveHorizon(horizonStep) })
	case fyne.KeyHome:
		a.apply(a.session.ResetCamera)
	}
}

// handleRune handles single-character shortcuts.
func (a *App) handleRune(r rune) {
	switch r {
	case '+', '=':
		a.apply(func() { a.session.Zoom(zoomStep) })
	case '-':
		a.apply(func() { a.session.Zoom(-zoomStep) })
	case '[':
		a.apply(func() { a.session.SetHorizonAngle(a.session.State().Camera.HorizonAngle - angleStep) })
	case ']':
		a.apply(func() { a.session.SetHorizonAngle(a.session.State().Camera.HorizonAngle + angleStep) })
	case '1', '2', '3':
		a.apply(func() { a.session.SetGridType(perspective.GridType(r - '0')) })
	case 'h', 'H':
		a.apply(func() { a.session.ToggleUI() })
	case 'r', 'R':
		a.apply(a.session.ResetCamera)
	}
}

// openReference shows a file dialog and loads the selected image.
func (a *App) openReference() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		a.loadReference(reader.URI().Name(), reader)
	}, a.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp",
	}))
	fd.Show()
}

// loadReference decodes r in the background and closes it when done.
func (a *App) loadReference(name string, r io.ReadCloser) {
	a.status.SetStatus(fmt.Sprintf("Loading %s...", name))
	a.session.LoadReferenceImageAsync(a.ctx, name, r, func(err error) {
		r.Close()
		switch {
		case errors.Is(err, api.ErrSuperseded), errors.Is(err, context.Canceled):
			return
		case err != nil:
			a.status.SetStatus("Reference image failed")
			dialog.ShowError(err, a.window)
		default:
			a.status.SetStatus(fmt.Sprintf("Reference %s", name))
		}
		a.sync()
	})
}

// exportGrid asks where to save and writes the export PNG there.
func (a *App) exportGrid() {
	opts := a.cfg.ExportOptions()
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return // Cancelled
		}
		defer writer.Close()

		if err := a.session.Export(writer, opts); err != nil {
			a.logger.Error("export failed", "error", err)
			dialog.ShowError(fmt.Errorf("failed to export: %w", err), a.window)
			return
		}
		a.status.SetStatus(fmt.Sprintf("Exported %s (%dx%d)", writer.URI().Name(), opts.Width, opts.Height))
	}, a.window)
	fd.SetFileName(opts.Name + ".png")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	fd.Show()
}
