package perspective

import "math"

// geometricParams are the per-density knobs of the angle progression:
// smaller steps and slower growth give more, tighter lines near the axis.
type geometricParams struct {
	spread    float64 // increment growth per step
	increment float64 // first step, radians
}

var geometricByDensity = map[Density]geometricParams{
	Low:    {spread: 0.18, increment: 0.012},
	Medium: {spread: 0.11, increment: 0.006},
	High:   {spread: 0.05, increment: 0.003},
}

var vp3LineCounts = map[Density]int{
	Low:    96,
	Medium: 192,
	High:   384,
}

func paramsFor(d Density) geometricParams {
	if p, ok := geometricByDensity[d]; ok {
		return p
	}
	return geometricByDensity[Medium]
}

// GeometricAngles returns the fan angles for a vp1/vp2 line set, in radians
// within (-π/2, π/2). The sequence starts at 0 and then emits +a and -a for
// each step of a geometric progression, so lines bunch near the horizon and
// spread out towards the vertical the way a receding grid foreshortens.
func GeometricAngles(d Density) []float64 {
	p := paramsFor(d)

	angles := []float64{0}
	current := 0.0
	increment := p.increment

	for current < math.Pi/2 {
		current += increment
		if current < math.Pi/2 {
			angles = append(angles, current, -current)
		}
		increment *= 1 + p.spread
	}
	return angles
}

// VP3LineCount returns how many uniformly spaced lines vp3 emits. vp3 fans
// through a much wider visual arc than vp1/vp2, so it gets more.
func VP3LineCount(d Density) int {
	if n, ok := vp3LineCounts[d]; ok {
		return n
	}
	return vp3LineCounts[Medium]
}

// VP3Angles returns vp3's line angles: VP3LineCount(d) equal steps over π,
// turned perpendicular to the horizon.
func VP3Angles(d Density, horizon float64) []float64 {
	count := VP3LineCount(d)
	step := math.Pi / float64(count)

	angles := make([]float64, count)
	for i := range angles {
		angles[i] = float64(i)*step + horizon + math.Pi/2
	}
	return angles
}
