// Package terrain models the rolling hills the train drives over.
//
// The profile is a pure function of world distance: a sum of sine waves.
// Every caller that needs a height or slope at the same x gets the same
// value, so bodies placed on the terrain and their rotation never disagree.
package terrain

import "math"

// Wave is one sine component of a profile.
type Wave struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// Profile is a superposition of sine waves.
type Profile struct {
	Waves []Wave `yaml:"waves"`
}

// Default returns the two-wave hills of the runner:
// 50·sin(0.002x) + 20·sin(0.005x).
func Default() Profile {
	return Profile{Waves: []Wave{
		{Amplitude: 50, Frequency: 0.002},
		{Amplitude: 20, Frequency: 0.005},
	}}
}

// Height returns the terrain elevation at world x (positive is up).
func (p Profile) Height(x float64) float64 {
	h := 0.0
	for _, w := range p.Waves {
		h += w.Amplitude * math.Sin(x*w.Frequency)
	}
	return h
}

// Slope returns the first difference Height(x+1) - Height(x).
func (p Profile) Slope(x float64) float64 {
	return p.Height(x+1) - p.Height(x)
}

// Angle returns the screen-space rotation of a body resting at x. Screen y
// grows downward, so climbing terrain gives a negative angle.
func (p Profile) Angle(x float64) float64 {
	return math.Atan2(-p.Slope(x), 1)
}

// Sample is the height and rotation at one x, computed together.
type Sample struct {
	X      float64
	Height float64
	Angle  float64
}

// At samples height and angle at x.
func (p Profile) At(x float64) Sample {
	return Sample{X: x, Height: p.Height(x), Angle: p.Angle(x)}
}
