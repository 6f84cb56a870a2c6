package api

import (
	"io"
	"log/slog"
	"time"

	"vantage/pkg/perspective"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Logger receives interaction and load events.
	// Default: a logger that discards everything
	Logger *slog.Logger

	// Clock supplies the start time of return animations.
	// Default: time.Now
	Clock func() time.Time

	// ShowUI draws markers and handles and enables handle hit-testing.
	// Default: true
	ShowUI bool

	// HitRadius is the grab distance around handles in pixels.
	// Default: 25
	HitRadius float64

	// ReturnDuration is how long released handles take to slide home.
	// Default: 250ms
	ReturnDuration time.Duration

	// Grid holds the initial grid configuration.
	// Default: two-point, medium density, vp3 on top
	Grid []perspective.ConfigOption
}

// DefaultSessionOptions returns session options with sensible defaults.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:          time.Now,
		ShowUI:         true,
		HitRadius:      perspective.DefaultHitRadius,
		ReturnDuration: perspective.ReturnDuration,
	}
}

// Option is a functional option for configuring SessionOptions.
type Option func(*SessionOptions)

// Logger sets the session logger.
func Logger(l *slog.Logger) Option {
	return func(o *SessionOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Clock sets the time source.
func Clock(now func() time.Time) Option {
	return func(o *SessionOptions) {
		if now != nil {
			o.Clock = now
		}
	}
}

// HideUI starts the session in clean view.
func HideUI() Option {
	return func(o *SessionOptions) {
		o.ShowUI = false
	}
}

// HitRadius sets the handle grab distance.
func HitRadius(r float64) Option {
	return func(o *SessionOptions) {
		if r > 0 {
			o.HitRadius = r
		}
	}
}

// ReturnDuration sets the handle return animation length. Zero snaps
// handles home immediately.
func ReturnDuration(d time.Duration) Option {
	return func(o *SessionOptions) {
		if d >= 0 {
			o.ReturnDuration = d
		}
	}
}

// Grid applies grid configuration to the initial state.
func Grid(opts ...perspective.ConfigOption) Option {
	return func(o *SessionOptions) {
		o.Grid = append(o.Grid, opts...)
	}
}

// NewSessionOptions creates options from functional options.
func NewSessionOptions(opts ...Option) SessionOptions {
	o := DefaultSessionOptions()
	o.Apply(opts...)
	return o
}

// Apply applies functional options to existing options.
func (o *SessionOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}
