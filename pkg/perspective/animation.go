package perspective

import (
	"time"

	"vantage/pkg/graphics"
)

// ReturnDuration is how long a released handle takes to slide back to rest.
const ReturnDuration = 250 * time.Millisecond

// snapDistance is below which a return animation is skipped entirely.
const snapDistance = 0.1

// ReturnAnimation slides a displacement back to a target with an ease-out
// curve. It is either idle or animating from From to To, and is advanced by
// calling Step with the current time from any frame source. Starting again
// supersedes an animation in flight.
type ReturnAnimation struct {
	animating bool
	start     time.Time
	from      graphics.Point
	to        graphics.Point
	duration  time.Duration
}

// Start begins animating from `from` to `to`. A displacement already within
// snapDistance of the target does not animate; Step then returns the target
// straight away.
func (a *ReturnAnimation) Start(now time.Time, from, to graphics.Point, d time.Duration) {
	*a = ReturnAnimation{
		animating: from.Dist(to) >= snapDistance && d > 0,
		start:     now,
		from:      from,
		to:        to,
		duration:  d,
	}
}

// Animating reports whether the animation is in flight.
func (a *ReturnAnimation) Animating() bool {
	return a.animating
}

// Cancel stops the animation where it is.
func (a *ReturnAnimation) Cancel() {
	a.animating = false
}

// Step returns the value at now and whether the animation has finished.
// The final step returns exactly the target.
func (a *ReturnAnimation) Step(now time.Time) (graphics.Point, bool) {
	if !a.animating {
		return a.to, true
	}

	progress := float64(now.Sub(a.start)) / float64(a.duration)
	if progress >= 1 {
		a.animating = false
		return a.to, true
	}
	if progress < 0 {
		progress = 0
	}

	ease := EaseOutQuad(progress)
	return a.from.Add(a.to.Sub(a.from).Scale(ease)), false
}

// EaseOutQuad starts fast and decelerates into t = 1.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
