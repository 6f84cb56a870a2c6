package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"vantage/pkg/perspective"
)

// ReferenceBar controls the reference image overlay.
type ReferenceBar struct {
	container *fyne.Container

	OnLoad  func()
	OnClear func()
	OnReset func()
	// OnProps receives each changed property as an option.
	OnProps func(opt perspective.ReferenceOption)

	clearBtn    *widget.Button
	resetBtn    *widget.Button
	opacity     *widget.Slider
	scale       *widget.Slider
	rotation    *widget.Slider
	visible     *widget.Check
	interactive *widget.Check
	followHzn   *widget.Check
	followZoom  *widget.Check

	syncing bool
}

// NewReferenceBar creates the reference controls, disabled until an image
// is loaded.
func NewReferenceBar() *ReferenceBar {
	b := &ReferenceBar{}
	b.build()
	b.Sync(nil)
	return b
}

func (b *ReferenceBar) build() {
	loadBtn := widget.NewButtonWithIcon("Reference", theme.FolderOpenIcon(), func() {
		if b.OnLoad != nil {
			b.OnLoad()
		}
	})
	b.clearBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if b.OnClear != nil {
			b.OnClear()
		}
	})
	b.resetBtn = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		if b.OnReset != nil {
			b.OnReset()
		}
	})

	b.opacity = b.slider(0, 1, 0.05, perspective.RefOpacity)
	b.scale = b.slider(0.1, 5, 0.05, perspective.RefScale)
	b.rotation = b.slider(-180, 180, 1, perspective.RefRotation)

	b.visible = b.check("Visible", perspective.RefVisible)
	b.interactive = b.check("Move", perspective.RefInteractive)
	b.followHzn = b.check("Tilt", perspective.RefFollowHorizon)
	b.followZoom = b.check("Zoom", perspective.RefFollowZoom)

	sliderSize := fyne.NewSize(110, b.opacity.MinSize().Height)
	b.container = container.NewHBox(
		loadBtn,
		b.clearBtn,
		b.resetBtn,
		widget.NewSeparator(),
		widget.NewLabel("Opacity"),
		container.NewGridWrap(sliderSize, b.opacity),
		widget.NewLabel("Scale"),
		container.NewGridWrap(sliderSize, b.scale),
		widget.NewLabel("Rotate"),
		container.NewGridWrap(sliderSize, b.rotation),
		widget.NewSeparator(),
		b.visible,
		b.interactive,
		b.followHzn,
		b.followZoom,
	)
}

func (b *ReferenceBar) slider(min, max, step float64, opt func(float64) perspective.ReferenceOption) *widget.Slider {
	s := widget.NewSlider(min, max)
	s.Step = step
	s.OnChanged = func(v float64) {
		b.emit(opt(v))
	}
	return s
}

func (b *ReferenceBar) check(label string, opt func(bool) perspective.ReferenceOption) *widget.Check {
	return widget.NewCheck(label, func(on bool) {
		b.emit(opt(on))
	})
}

func (b *ReferenceBar) emit(opt perspective.ReferenceOption) {
	if b.syncing || b.OnProps == nil {
		return
	}
	b.OnProps(opt)
}

// Container returns the reference bar container.
func (b *ReferenceBar) Container() *fyne.Container {
	return b.container
}

// Sync updates the controls from ref without firing callbacks. A nil ref
// disables the buttons and toggles.
func (b *ReferenceBar) Sync(ref *perspective.ReferenceImage) {
	b.syncing = true
	defer func() { b.syncing = false }()

	controls := []fyne.Disableable{
		b.clearBtn, b.resetBtn,
		b.visible, b.interactive, b.followHzn, b.followZoom,
	}
	for _, c := range controls {
		if ref == nil {
			c.Disable()
		} else {
			c.Enable()
		}
	}
	if ref == nil {
		return
	}

	b.opacity.SetValue(ref.Opacity)
	b.scale.SetValue(ref.Scale)
	b.rotation.SetValue(ref.Rotation)
	b.visible.SetChecked(ref.IsVisible)
	b.interactive.SetChecked(ref.IsInteractive)
	b.followHzn.SetChecked(ref.FollowHorizon)
	b.followZoom.SetChecked(ref.FollowZoom)
}
