package perspective

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometricAnglesSymmetric(t *testing.T) {
	for _, d := range []Density{Low, Medium, High} {
		t.Run(string(d), func(t *testing.T) {
			angles := GeometricAngles(d)
			require.NotEmpty(t, angles)

			zeros := 0
			set := make(map[float64]bool, len(angles))
			for _, a := range angles {
				set[a] = true
				if a == 0 {
					zeros++
				}
				assert.Greater(t, a, -math.Pi/2)
				assert.Less(t, a, math.Pi/2)
			}
			assert.Equal(t, 1, zeros)
			for _, a := range angles {
				assert.True(t, set[-a], "missing %v", -a)
			}
		})
	}
}

func TestGeometricAnglesDensityOrdering(t *testing.T) {
	low := len(GeometricAngles(Low))
	medium := len(GeometricAngles(Medium))
	high := len(GeometricAngles(High))

	assert.Less(t, low, medium)
	assert.Less(t, medium, high)
}

func TestGeometricAnglesSpreadOut(t *testing.T) {
	angles := GeometricAngles(Medium)
	// Positive angles come at indices 1, 3, 5, ...; gaps must grow.
	prevGap := 0.0
	prev := 0.0
	for i := 1; i < len(angles); i += 2 {
		gap := angles[i] - prev
		assert.Greater(t, gap, prevGap)
		prevGap, prev = gap, angles[i]
	}
}

func TestVP3Angles(t *testing.T) {
	assert.Equal(t, 96, VP3LineCount(Low))
	assert.Equal(t, 192, VP3LineCount(Medium))
	assert.Equal(t, 384, VP3LineCount(High))
	assert.Equal(t, 192, VP3LineCount("bogus"))

	angles := VP3Angles(High, 0)
	require.Len(t, angles, 384)
	assert.Equal(t, math.Pi/2, angles[0])
	assert.InDelta(t, math.Pi/384, angles[1]-angles[0], 1e-12)
}
