package core

// Key is a logical key, abstracted from the physical key that produced it.
// The platform layer maps terminal keys onto these.
type Key int

const (
	KeyLeft    Key = iota // A, Left arrow
	KeyRight              // D, Right arrow
	KeyJump               // W, Up arrow, Space
	KeyThrow              // X, F - throw coal
	KeyRestart            // R - restart after win or game over
	KeyPause              // P, Escape
	KeyBoost              // any other game key (runner boost)

	NumKeys
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyJump:
		return "Jump"
	case KeyThrow:
		return "Throw"
	case KeyRestart:
		return "Restart"
	case KeyPause:
		return "Pause"
	case KeyBoost:
		return "Boost"
	default:
		return "Unknown"
	}
}

// Command is the normalized input for one simulation tick. It is produced by
// the input aggregator from keyboard, gamepad and pointer state and is the
// only thing a game sees of its input devices.
type Command struct {
	// MoveAxis is the horizontal intent in [-1, 1]. Digital sources give
	// -1, 0 or 1; an analog stick outside the deadzone gives its magnitude.
	MoveAxis float64

	JumpEdge    bool // jump went from released to pressed this tick
	ThrowEdge   bool // throw went from released to pressed this tick
	RestartEdge bool // restart went from released to pressed this tick
	PauseEdge   bool // pause went from released to pressed this tick

	// BoostPresses counts fresh presses that feed the runner's boost this
	// tick. Several buttons pressed in the same tick each count once.
	BoostPresses int
	// BoostHeld is true while any boosting key or button is down.
	BoostHeld bool
	// BoostWasHeld is BoostHeld of the previous tick.
	BoostWasHeld bool

	// Click is the pointer press of this tick in normalized viewport
	// coordinates ([0,1] on both axes), or nil.
	Click *Vec

	// Interacted is true when any key, button or pointer press happened.
	Interacted bool
	// FirstInteraction is true exactly once per aggregator lifetime, on
	// the first tick with Interacted set.
	FirstInteraction bool
}
