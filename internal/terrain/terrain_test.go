package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightAtOriginIsBaseline(t *testing.T) {
	assert.Equal(t, 0.0, Default().Height(0))
}

func TestHeightDeterministic(t *testing.T) {
	p := Default()
	for _, x := range []float64{-12345.5, -1, 0.25, 777, 1e6} {
		assert.Equal(t, p.Height(x), p.Height(x), "x=%v", x)
	}
}

func TestHeightKnownValue(t *testing.T) {
	p := Default()
	// Quarter period of the first wave: sin(0.002x) = 1
	x := math.Pi / 2 / 0.002
	expected := 50 + 20*math.Sin(x*0.005)
	assert.InDelta(t, expected, p.Height(x), 1e-9)
}

func TestHeightBounded(t *testing.T) {
	p := Default()
	for x := -50000.0; x < 50000; x += 97.3 {
		h := p.Height(x)
		if h > 70 || h < -70 {
			t.Fatalf("Height(%v) = %v outside ±70", x, h)
		}
	}
}

func TestAngleMatchesSlope(t *testing.T) {
	p := Default()
	tests := []struct {
		name string
		x    float64
	}{
		{"origin climbs", 0},
		{"fractional", 123.456},
		{"negative", -4000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := p.At(tc.x)
			assert.Equal(t, p.Height(tc.x), s.Height)
			assert.Equal(t, p.Angle(tc.x), s.Angle)
			assert.InDelta(t, math.Atan(-p.Slope(tc.x)), s.Angle, 1e-12)
		})
	}

	// Terrain rises from 0, so the body tilts nose-up (negative on screen).
	assert.Less(t, p.Angle(0), 0.0)
}

func TestEmptyProfileIsFlat(t *testing.T) {
	var p Profile
	assert.Equal(t, 0.0, p.Height(42))
	assert.Equal(t, 0.0, p.Angle(42))
}
