// Package train implements Happy Train, an endless runner.
// A locomotive pulls a chain of wagons over rolling hills. Any key or
// button boosts it, coal thrown from the wagons into the locomotive boosts
// it further, and the run ends after a fixed distance.
package train

import (
	"math/rand"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/input"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

// Game implements the runner simulation. Everything except the train's
// distance lives in view space: the locomotive stays put on screen and the
// world scrolls past it.
type Game struct {
	cfg    config.TrainConfig
	source config.Source
	pinned bool

	runtime core.RuntimeConfig
	rng     *rand.Rand
	chain   chain
	train   Train
	tunnels []Tunnel
	coal    []Coal
	smoke   []Puff
	chug    chugPacer

	delivered int // coal lumps that reached the locomotive
	paused    bool
	ticks     int

	events core.EventQueue
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Happy Train game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(cfg config.TrainConfig) *Game {
	return &Game{cfg: cfg, source: config.SourceBuiltin, pinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "train"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Happy Train"
}

// Bindings returns the runner's gamepad layout.
func (g *Game) Bindings() input.Bindings {
	b := input.RunnerBindings()
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
func (g *Game) Config() config.TrainConfig {
	return g.cfg
}

// Reset loads configuration and starts a new run. The run has no restart
// of its own once complete; the host resets the game to play again.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}
	if !g.pinned {
		cfg, src, err := config.LoadTrain(configPath)
		if err != nil {
			cfg, src = config.DefaultTrainConfig(), config.SourceBuiltin
		}
		g.cfg, g.source = cfg, src
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.chain = newChain(g.cfg)
	g.train = newTrain(g.cfg.Speed)
	g.tunnels = newTunnels(g.cfg.Level.Tunnels)
	g.coal = nil
	g.smoke = nil
	g.chug = chugPacer{}
	g.delivered = 0
	g.paused = false
	g.ticks = 0
	g.events = core.EventQueue{}
}

// Step advances the game by one tick.
func (g *Game) Step(cmd core.Command) core.StepResult {
	if cmd.FirstInteraction {
		g.events.Emit(core.EventResumeAudio)
	}

	if cmd.PauseEdge && !g.train.Completed {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.ticks++

	held := false
	if !g.train.Completed {
		g.handleInput(cmd)
		held = cmd.BoostHeld
	}

	g.train.hop(g.cfg.Jump.Gravity)
	g.train.updateSpeed(held, g.cfg.Speed)
	g.train.Distance += g.train.Speed

	if !g.train.Completed && g.train.Distance >= g.cfg.Level.TargetDistance {
		g.train.Completed = true
		g.events.Emit(core.EventComplete)
	}

	dt := 1000 / float64(g.runtime.TickRate)
	if ev, ok := g.chug.tick(dt, g.train.Speed, g.cfg.Chug); ok {
		g.events.Push(ev)
	}

	g.funnelSmoke()
	g.checkTunnels()
	g.updateCoal()
	g.updateSmoke()

	return g.result()
}

// handleInput applies boost presses, throws and the hop.
func (g *Game) handleInput(cmd core.Command) {
	if cmd.BoostPresses > 0 {
		g.train.kick(cmd.BoostPresses, g.cfg.Speed.BoostKick)
		if !cmd.BoostWasHeld {
			g.events.Emit(core.EventBoost)
		}
	}
	if cmd.ThrowEdge {
		g.throwCoal(0)
	}
	if cmd.Click != nil {
		p := core.Vec{X: cmd.Click.X * g.cfg.View.Width, Y: cmd.Click.Y * g.cfg.View.Height}
		if i := g.wagonAt(p); i >= 0 {
			g.throwCoal(i)
		}
	}
	if cmd.JumpEdge && g.train.startJump(g.cfg.Jump.Impulse) {
		g.events.Emit(core.EventJump)
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Events:   g.events.Drain(),
		Entities: g.Entities(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := core.PhasePlaying
	if g.train.Completed {
		phase = core.PhaseComplete
	}
	return core.GameState{
		Phase:    phase,
		Score:    g.delivered,
		Speed:    g.train.Speed,
		Distance: g.train.Distance,
		Paused:   g.paused,
	}
}

// Train returns a copy of the train state.
func (g *Game) Train() Train {
	return g.train
}

// Locomotive returns the locomotive's derived pose.
func (g *Game) Locomotive() Pose {
	return g.chain.Locomotive(&g.train)
}

// Wagons returns the derived wagon poses, front to back.
func (g *Game) Wagons() []Pose {
	return g.chain.Wagons(&g.train)
}

// Coal returns the live coal lumps.
func (g *Game) Coal() []Coal {
	return g.coal
}

// Smoke returns the live smoke particles.
func (g *Game) Smoke() []Puff {
	return g.smoke
}

// Tunnels returns the route's tunnels.
func (g *Game) Tunnels() []Tunnel {
	return g.tunnels
}

// Entities returns the render list in draw order: tunnels, wagons,
// locomotive, coal, smoke. Chain units carry their rail contact point in
// Box.X/Box.Y.
func (g *Game) Entities() []core.Entity {
	body := g.cfg.Train
	out := make([]core.Entity, 0, len(g.tunnels)+body.Wagons+1+len(g.coal)+len(g.smoke))
	tunnelH := g.chain.trackY
	for _, t := range g.tunnels {
		x := t.WorldX - g.train.Distance
		if x > g.cfg.View.Width || x+t.Length < 0 {
			continue
		}
		out = append(out, core.Entity{Kind: core.EntityTunnel, Box: core.Box{X: x, W: t.Length, H: tunnelH}})
	}
	for _, w := range g.Wagons() {
		out = append(out, core.Entity{
			Kind:   core.EntityWagon,
			Box:    core.Box{X: w.MidX, Y: w.Y, W: body.WagonWidth, H: wagonHeight},
			Facing: 1,
			Angle:  w.Angle,
		})
	}
	loco := g.Locomotive()
	out = append(out, core.Entity{
		Kind:   core.EntityLocomotive,
		Box:    core.Box{X: loco.MidX, Y: loco.Y, W: locoWidth, H: locoHeight},
		Facing: 1,
		Angle:  loco.Angle,
	})
	for _, c := range g.coal {
		out = append(out, core.Entity{Kind: core.EntityCoal, Box: core.Box{X: c.Pos.X, Y: c.Pos.Y, W: coalSize, H: coalSize}})
	}
	for _, p := range g.smoke {
		out = append(out, core.Entity{Kind: core.EntitySmoke, Box: core.Box{X: p.Pos.X, Y: p.Pos.Y, W: p.Size, H: p.Size}, Life: p.Life})
	}
	return out
}

// Register the game with the registry
func init() {
	registry.Register("train", func() registry.Game {
		return New()
	})
}
