package gui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"vantage/pkg/perspective"
)

var gridTypeLabels = []string{"1-point", "2-point", "3-point"}

var densityLabels = []string{
	string(perspective.Low),
	string(perspective.Medium),
	string(perspective.High),
}

var orientationLabels = []string{
	string(perspective.Top),
	string(perspective.Bottom),
}

// Toolbar provides grid, camera and export controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnGridType    func(t perspective.GridType)
	OnDensity     func(d perspective.Density)
	OnOrientation func(o perspective.Orientation)
	OnAngle       func(deg float64)
	OnZoomIn      func()
	OnZoomOut     func()
	OnResetCamera func()
	OnResetAll    func()
	OnShowUI      func(show bool)
	OnExport      func()

	// Components
	typeSelect   *widget.Select
	densityRadio *widget.RadioGroup
	orientSelect *widget.Select
	angleSlider  *widget.Slider
	angleLabel   *widget.Label
	showUICheck  *widget.Check

	// syncing suppresses callbacks while widgets are set from state.
	syncing bool
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func (t *Toolbar) build() {
	t.typeSelect = widget.NewSelect(gridTypeLabels, func(s string) {
		if t.syncing || t.OnGridType == nil {
			return
		}
		for i, l := range gridTypeLabels {
			if l == s {
				t.OnGridType(perspective.GridType(i + 1))
			}
		}
	})

	t.densityRadio = widget.NewRadioGroup(densityLabels, func(s string) {
		if t.syncing || t.OnDensity == nil || s == "" {
			return
		}
		t.OnDensity(perspective.Density(s))
	})
	t.densityRadio.Horizontal = true
	t.densityRadio.Required = true

	t.orientSelect = widget.NewSelect(orientationLabels, func(s string) {
		if t.syncing || t.OnOrientation == nil {
			return
		}
		t.OnOrientation(perspective.Orientation(s))
	})

	t.angleLabel = widget.NewLabel(formatAngle(0))
	t.angleSlider = widget.NewSlider(perspective.MinHorizonAngle, perspective.MaxHorizonAngle)
	t.angleSlider.Step = 1
	t.angleSlider.OnChanged = func(v float64) {
		t.angleLabel.SetText(formatAngle(v))
		if t.syncing || t.OnAngle == nil {
			return
		}
		t.OnAngle(v)
	}

	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
		if t.OnZoomOut != nil {
			t.OnZoomOut()
		}
	})

	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		if t.OnZoomIn != nil {
			t.OnZoomIn()
		}
	})

	resetCameraBtn := widget.NewButtonWithIcon("View", theme.ViewRestoreIcon(), func() {
		if t.OnResetCamera != nil {
			t.OnResetCamera()
		}
	})

	resetAllBtn := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		if t.OnResetAll != nil {
			t.OnResetAll()
		}
	})

	t.showUICheck = widget.NewCheck("Handles", func(on bool) {
		if t.syncing || t.OnShowUI == nil {
			return
		}
		t.OnShowUI(on)
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if t.OnExport != nil {
			t.OnExport()
		}
	})

	t.container = container.NewHBox(
		t.typeSelect,
		t.orientSelect,
		widget.NewSeparator(),
		t.densityRadio,
		widget.NewSeparator(),
		container.NewGridWrap(fyne.NewSize(160, t.angleSlider.MinSize().Height), t.angleSlider),
		t.angleLabel,
		widget.NewSeparator(),
		zoomOutBtn,
		zoomInBtn,
		resetCameraBtn,
		resetAllBtn,
		widget.NewSeparator(),
		t.showUICheck,
		exportBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// Sync updates the controls from st without firing callbacks.
func (t *Toolbar) Sync(st perspective.State, showUI bool) {
	t.syncing = true
	defer func() { t.syncing = false }()

	if i := int(st.Config.Type) - 1; i >= 0 && i < len(gridTypeLabels) {
		t.typeSelect.SetSelected(gridTypeLabels[i])
	}
	t.densityRadio.SetSelected(string(st.Config.Density))
	t.orientSelect.SetSelected(string(st.Config.ThirdPointOrientation))
	if st.Config.Type == perspective.ThreePoint {
		t.orientSelect.Enable()
	} else {
		t.orientSelect.Disable()
	}
	t.angleSlider.SetValue(st.Camera.HorizonAngle)
	t.angleLabel.SetText(formatAngle(st.Camera.HorizonAngle))
	t.showUICheck.SetChecked(showUI)
}

func formatAngle(deg float64) string {
	return fmt.Sprintf("%+.0f°", math.Round(deg))
}

// StatusBar provides status information.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	viewLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:     widget.NewLabel("Ready"),
		viewLabel: widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.viewLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetCamera shows the zoom and pan of cam.
func (s *StatusBar) SetCamera(cam perspective.Camera) {
	s.viewLabel.SetText(fmt.Sprintf("%d%%  pan %.0f, %.0f", int(math.Round(cam.Zoom*100)), cam.PanX, cam.PanY))
}
