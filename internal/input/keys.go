package input

import "github.com/vovakirdan/happy-arcade/internal/core"

const (
	// DefaultHoldTicks is how long an auto-repeated terminal key press
	// keeps the key held.
	DefaultHoldTicks = 8
	// FirstHoldTicks is how long the first press of a key counts as held.
	// It outlasts the usual auto-repeat delay (250-500ms) so a long press
	// never reads as two.
	FirstHoldTicks = 32
)

// KeyTracker emulates held-key state for hosts that only report key
// presses (terminals send auto-repeated presses and no releases). A fresh
// press keeps the key down for firstHold ticks; each auto-repeat refreshes
// it for holdTicks.
type KeyTracker struct {
	holdTicks int
	firstHold int
	tick      int
	until     [core.NumKeys]int
}

// NewKeyTracker creates a tracker. holdTicks <= 0 selects DefaultHoldTicks.
func NewKeyTracker(holdTicks int) *KeyTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyTracker{holdTicks: holdTicks, firstHold: max(holdTicks, FirstHoldTicks)}
}

// Press records a press (or auto-repeat) of k.
func (t *KeyTracker) Press(k core.Key) {
	if k < 0 || k >= core.NumKeys {
		return
	}
	if t.tick < t.until[k] {
		t.until[k] = max(t.until[k], t.tick+t.holdTicks)
		return
	}
	t.until[k] = t.tick + t.firstHold
}

// Release forces k up immediately, for hosts that do report releases.
func (t *KeyTracker) Release(k core.Key) {
	if k < 0 || k >= core.NumKeys {
		return
	}
	t.until[k] = t.tick
}

// State returns which keys are down on the current tick.
func (t *KeyTracker) State() [core.NumKeys]bool {
	var keys [core.NumKeys]bool
	for k := range keys {
		keys[k] = t.tick < t.until[k]
	}
	return keys
}

// Advance moves to the next tick.
func (t *KeyTracker) Advance() {
	t.tick++
}
