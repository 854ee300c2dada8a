package input

import (
	"math"
	"sort"

	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Aggregator merges keyboard, gamepad and pointer snapshots into one
// core.Command per tick. It is not safe for concurrent use; it belongs to
// the tick loop.
type Aggregator struct {
	bindings Bindings

	keys       [core.NumKeys]Latch
	pads       *PadLatches
	boostKeys  Latch
	boostHeld  bool
	interacted bool
}

// NewAggregator creates an aggregator for the given bindings.
func NewAggregator(b Bindings) *Aggregator {
	if b.Deadzone <= 0 {
		b.Deadzone = DefaultDeadzone
	}
	return &Aggregator{
		bindings: b,
		pads:     NewPadLatches(),
	}
}

// Bindings returns the active bindings.
func (a *Aggregator) Bindings() Bindings {
	return a.bindings
}

// Sample converts one snapshot into a command and advances edge memory.
func (a *Aggregator) Sample(s Snapshot) core.Command {
	var cmd core.Command
	b := a.bindings

	pads := a.selectPads(s.Pads)

	// Keyboard edges
	var keyEdge [core.NumKeys]bool
	for k := core.Key(0); k < core.NumKeys; k++ {
		keyEdge[k] = a.keys[k].Update(s.Keys[k])
		if keyEdge[k] {
			cmd.Interacted = true
		}
	}

	// Gamepad edges
	padEdges := a.pads.Update(pads)
	for _, edges := range padEdges {
		if len(edges) > 0 {
			cmd.Interacted = true
		}
	}

	cmd.MoveAxis = a.moveAxis(s.Keys, pads)

	// Boost: the keyboard acts as one switch, every pad button as its own.
	keyBoost := false
	for _, k := range b.BoostKeys {
		if k >= 0 && k < core.NumKeys && s.Keys[k] {
			keyBoost = true
			break
		}
	}
	keyBoostEdge := a.boostKeys.Update(keyBoost)
	if keyBoostEdge {
		cmd.BoostPresses++
	}

	cmd.JumpEdge = keyEdge[core.KeyJump]
	if b.JumpOpensBoost {
		cmd.JumpEdge = cmd.JumpEdge && keyBoostEdge
	}
	cmd.ThrowEdge = keyEdge[core.KeyThrow]
	cmd.RestartEdge = keyEdge[core.KeyRestart]
	cmd.PauseEdge = keyEdge[core.KeyPause]
	for _, edges := range padEdges {
		cmd.JumpEdge = cmd.JumpEdge || containsAny(edges, b.JumpButtons)
		cmd.ThrowEdge = cmd.ThrowEdge || containsAny(edges, b.ThrowButtons)
		cmd.RestartEdge = cmd.RestartEdge || containsAny(edges, b.RestartButtons)
		cmd.PauseEdge = cmd.PauseEdge || containsAny(edges, b.PauseButtons)
	}

	padBoost := false
	if b.BoostAnyButton {
		for i, gp := range pads {
			cmd.BoostPresses += len(padEdges[i])
			for _, btn := range gp.Buttons {
				if btn.Pressed {
					padBoost = true
				}
			}
		}
	}
	cmd.BoostWasHeld = a.boostHeld
	cmd.BoostHeld = keyBoost || padBoost
	a.boostHeld = cmd.BoostHeld

	if s.Click != nil {
		click := *s.Click
		cmd.Click = &click
		cmd.Interacted = true
	}

	if cmd.Interacted && !a.interacted {
		a.interacted = true
		cmd.FirstInteraction = true
	}

	return cmd
}

// moveAxis resolves horizontal intent. Later sources override earlier ones:
// keys, then the analog stick, then the d-pad.
func (a *Aggregator) moveAxis(keys [core.NumKeys]bool, pads []Gamepad) float64 {
	b := a.bindings
	axis := 0.0
	if keys[core.KeyLeft] {
		axis = -1
	}
	if keys[core.KeyRight] {
		axis = 1
	}

	for _, gp := range pads {
		if b.MoveAxis >= 0 {
			v := gp.Axis(b.MoveAxis)
			if math.Abs(v) > b.Deadzone {
				axis = core.ClampF(v, -1, 1)
			}
		}
		if anyPressed(gp, b.LeftButtons) {
			axis = -1
		}
		if anyPressed(gp, b.RightButtons) {
			axis = 1
		}
	}
	return axis
}

func (a *Aggregator) selectPads(pads []Gamepad) []Gamepad {
	if len(pads) == 0 {
		return nil
	}
	sorted := make([]Gamepad, len(pads))
	copy(sorted, pads)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	if a.bindings.PrimaryPadOnly {
		return sorted[:1]
	}
	return sorted
}

// Reset clears all edge memory except the one-shot interaction flag, which
// lives as long as the aggregator.
func (a *Aggregator) Reset() {
	for k := range a.keys {
		a.keys[k].Reset()
	}
	a.pads = NewPadLatches()
	a.boostKeys.Reset()
	a.boostHeld = false
}
