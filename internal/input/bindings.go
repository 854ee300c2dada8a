package input

import "github.com/vovakirdan/happy-arcade/internal/core"

// DefaultDeadzone is the analog stick magnitude below which the stick
// reads as centered.
const DefaultDeadzone = 0.1

// Bindings describes how one game maps gamepad buttons and keys to
// commands. Key bindings are fixed by the logical keys in core; only the
// boosting key set varies.
type Bindings struct {
	// MoveAxis is the stick axis used for horizontal movement; -1 disables
	// the stick.
	MoveAxis int
	Deadzone float64

	LeftButtons    []int
	RightButtons   []int
	JumpButtons    []int
	ThrowButtons   []int
	RestartButtons []int
	PauseButtons   []int

	// PrimaryPadOnly restricts gamepad input to the lowest-indexed
	// connected pad.
	PrimaryPadOnly bool

	// BoostAnyButton makes every fresh button press a boost press.
	BoostAnyButton bool
	// BoostKeys are the keys that boost while held. Pressing the first of
	// them is one boost press; further keys while one is held are not.
	BoostKeys []core.Key
	// JumpOpensBoost limits keyboard jumps to the press that starts a
	// boost: KeyJump does nothing while another boost key is held.
	JumpOpensBoost bool
}

// PlatformerBindings returns the stick + d-pad layout of the platformer:
// A or d-pad up jumps, B restarts.
func PlatformerBindings() Bindings {
	return Bindings{
		MoveAxis:       0,
		Deadzone:       DefaultDeadzone,
		LeftButtons:    []int{ButtonDPadLeft},
		RightButtons:   []int{ButtonDPadRight},
		JumpButtons:    []int{ButtonA, ButtonDPadUp},
		RestartButtons: []int{ButtonB},
		PauseButtons:   []int{9},
		PrimaryPadOnly: true,
	}
}

// RunnerBindings returns the runner layout: every button and every key
// boosts, A throws coal, B and X hop. The jump key hops only when it is the
// first key down.
func RunnerBindings() Bindings {
	return Bindings{
		MoveAxis:       -1,
		Deadzone:       DefaultDeadzone,
		JumpButtons:    []int{ButtonB, ButtonX},
		ThrowButtons:   []int{ButtonA},
		BoostAnyButton: true,
		BoostKeys: []core.Key{
			core.KeyLeft, core.KeyRight, core.KeyJump, core.KeyThrow,
			core.KeyRestart, core.KeyPause, core.KeyBoost,
		},
		JumpOpensBoost: true,
	}
}

func anyPressed(gp Gamepad, buttons []int) bool {
	for _, b := range buttons {
		if gp.Pressed(b) {
			return true
		}
	}
	return false
}

func containsAny(edges []int, buttons []int) bool {
	for _, e := range edges {
		for _, b := range buttons {
			if e == b {
				return true
			}
		}
	}
	return false
}
