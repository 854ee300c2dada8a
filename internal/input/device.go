// Package input turns raw device state into per-tick game commands.
//
// Devices are polled: each tick the host hands the aggregator a Snapshot of
// which logical keys are down and what every connected gamepad reports. The
// aggregator keeps one frame of memory per source so that edge-triggered
// actions (jump, throw, restart, boost) fire exactly once per press.
package input

import "github.com/vovakirdan/happy-arcade/internal/core"

// Standard gamepad button indices (W3C "standard" mapping).
const (
	ButtonA         = 0
	ButtonB         = 1
	ButtonX         = 2
	ButtonY         = 3
	ButtonDPadUp    = 12
	ButtonDPadDown  = 13
	ButtonDPadLeft  = 14
	ButtonDPadRight = 15
)

// Button is the state of one gamepad button.
type Button struct {
	Pressed bool
	Value   float64 // analog pressure in [0,1], 1 for digital buttons
}

// Gamepad is a snapshot of one connected pad.
type Gamepad struct {
	Index   int // stable slot number while connected
	ID      string
	Buttons []Button
	Axes    []float64
}

// Pressed reports whether button b exists and is down. Missing buttons
// read as released.
func (g Gamepad) Pressed(b int) bool {
	return b >= 0 && b < len(g.Buttons) && g.Buttons[b].Pressed
}

// Axis returns axis a, or 0 when the pad has no such axis.
func (g Gamepad) Axis(a int) float64 {
	if a < 0 || a >= len(g.Axes) {
		return 0
	}
	return g.Axes[a]
}

// Snapshot is the raw device state sampled at the start of a tick.
type Snapshot struct {
	Keys  [core.NumKeys]bool
	Pads  []Gamepad // connected pads only; empty when none
	Click *core.Vec // normalized pointer press, nil if none
}

// Press marks the given keys as down.
func (s *Snapshot) Press(keys ...core.Key) {
	for _, k := range keys {
		if k >= 0 && k < core.NumKeys {
			s.Keys[k] = true
		}
	}
}
