// Package kitty implements Happy Kitty, a side-scrolling platformer.
// The kitty runs and double-jumps across platforms, collects fish, stomps
// or dodges patrolling dogs and wins by reaching the food bowl.
package kitty

import (
	"math"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/input"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

// Game implements the platformer simulation.
type Game struct {
	cfg    config.KittyConfig
	source config.Source
	pinned bool // cfg was injected; Reset does not reload it

	runtime core.RuntimeConfig
	player  Player
	level   *Level
	camera  float64
	score   int
	paused  bool
	ticks   int

	events core.EventQueue
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Happy Kitty game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(cfg config.KittyConfig) *Game {
	return &Game{cfg: cfg, source: config.SourceBuiltin, pinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kitty"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Happy Kitty"
}

// Bindings returns the platformer's gamepad layout.
func (g *Game) Bindings() input.Bindings {
	b := input.PlatformerBindings()
	if g.cfg.Input.Deadzone > 0 {
		b.Deadzone = g.cfg.Input.Deadzone
	}
	return b
}

// ConfigSource reports where the active configuration came from.
func (g *Game) ConfigSource() config.Source {
	return g.source
}

// HoldTicks is how long a terminal key press counts as held.
func (g *Game) HoldTicks() int {
	return g.cfg.Input.HoldTicks
}

// Config returns the active configuration.
func (g *Game) Config() config.KittyConfig {
	return g.cfg
}

// Reset loads configuration and starts the level from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.pinned {
		cfg, src, err := config.LoadKitty(configPath)
		if err != nil {
			cfg, src = config.DefaultKittyConfig(), config.SourceBuiltin
		}
		g.cfg, g.source = cfg, src
	}
	g.level = newLevel(g.cfg)
	g.paused = false
	g.ticks = 0
	g.events = core.EventQueue{}
	g.resetLevel()
}

// resetLevel is the full level reset used by restart and by falling out
// of the world: player, camera, score and every one-way flag.
func (g *Game) resetLevel() {
	g.player.reset(g.cfg.Player)
	g.level.reset()
	g.camera = 0
	g.score = 0
}

// Step advances the game by one tick.
func (g *Game) Step(cmd core.Command) core.StepResult {
	if cmd.FirstInteraction {
		g.events.Emit(core.EventResumeAudio)
	}

	phase := g.phase()
	if phase.Terminal() {
		// Frozen; only restart gets through.
		if cmd.RestartEdge {
			g.resetLevel()
			g.events.Emit(core.EventReset)
		}
		return g.result()
	}

	if cmd.PauseEdge {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.ticks++

	if g.player.update(cmd, g.cfg.Physics) {
		g.events.Push(core.Event{Kind: core.EventJump, Pos: g.player.Center()})
	}
	if g.player.Y > g.cfg.World.Height+g.cfg.Physics.FallMargin {
		g.resetLevel()
		g.events.Emit(core.EventReset)
	}

	g.resolvePlatforms()
	g.collectFish()
	g.updateDogs()
	g.checkGoal()

	g.camera = math.Max(g.camera, g.player.X-g.cfg.World.Width/2)

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Events:   g.events.Drain(),
		Entities: g.Entities(),
	}
}

func (g *Game) phase() core.Phase {
	switch {
	case g.level.Goal.Collected:
		return core.PhaseWon
	case g.player.Lives <= 0:
		return core.PhaseLost
	default:
		return core.PhasePlaying
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.phase(),
		Score:  g.score,
		Lives:  g.player.Lives,
		Paused: g.paused,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Level returns the live level. Callers must not mutate it.
func (g *Game) Level() *Level {
	return g.level
}

// Camera returns the horizontal scroll offset in world units.
func (g *Game) Camera() float64 {
	return g.camera
}

// Entities returns the render list in draw order: platforms, fish, dogs,
// goal, player. Collected fish, dead dogs and a reached goal are omitted.
func (g *Game) Entities() []core.Entity {
	lv := g.level
	out := make([]core.Entity, 0, len(lv.Platforms)+len(lv.Fish)+len(lv.Dogs)+2)
	for _, p := range lv.Platforms {
		out = append(out, core.Entity{Kind: p.Kind, Box: p.Box})
	}
	for _, f := range lv.Fish {
		if f.Collected {
			continue
		}
		out = append(out, core.Entity{Kind: core.EntityFish, Box: core.Box{X: f.Pos.X, Y: f.Pos.Y}})
	}
	for i := range lv.Dogs {
		d := &lv.Dogs[i]
		if d.Dead {
			continue
		}
		out = append(out, core.Entity{Kind: core.EntityDog, Box: d.Box(), Facing: d.Facing})
	}
	if !lv.Goal.Collected {
		out = append(out, core.Entity{Kind: core.EntityGoal, Box: lv.Goal.Box})
	}
	p := &g.player
	out = append(out, core.Entity{
		Kind:       core.EntityPlayer,
		Box:        p.Box(),
		Facing:     p.Facing,
		Invincible: p.Invincible > 0,
	})
	return out
}

// Register the game with the registry
func init() {
	registry.Register("kitty", func() registry.Game {
		return New()
	})
}
