package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the progression state of a game session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further gameplay happens in this phase.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// GameState represents the HUD-level state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int     // fish collected (platformer), coal delivered (runner)
	Lives    int     // lives remaining (platformer)
	Speed    float64 // current speed (runner)
	Distance float64 // distance traveled in world units (runner)
	Paused   bool
}

// EntityKind tags an entry of the render list.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityDog
	EntityPlatform
	EntityGround
	EntityStep
	EntityFish
	EntityGoal
	EntityLocomotive
	EntityWagon
	EntityCoal
	EntitySmoke
	EntityTunnel
)

// Entity is one positioned item of the per-tick render list. Positions are
// world units; the renderer applies the camera.
type Entity struct {
	Kind   EntityKind
	Box    Box     // bounds; for chain units X/Y is the anchor point
	Facing int     // +1 right, -1 left
	Angle  float64 // rotation in radians (runner chain units)

	Dead       bool // defeated enemy (not drawn by default)
	Invincible bool // in the post-hit grace window (renderer may flicker)
	Life       float64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Events   []Event
	Entities []Entity
}
