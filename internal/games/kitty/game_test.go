package kitty

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

// flatConfig is one long ground strip with nothing else on it.
func flatConfig() config.KittyConfig {
	cfg := config.DefaultKittyConfig()
	cfg.Level = config.KittyLevel{
		Platforms: []config.PlatformSpec{{X: 0, Y: 560, Width: 100000, Height: 40, Type: "ground"}},
		Goal:      config.GoalSpec{X: 90000, Y: 0, Width: 60, Height: 35},
	}
	return cfg
}

func newGame(t *testing.T, cfg config.KittyConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	return g
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// settle steps idle until the player stands on the ground.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 120; i++ {
		g.Step(core.Command{})
		if g.player.OnGround {
			return
		}
	}
	t.Fatal("player never landed")
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("kitty"))
}

func TestResetRoundTrip(t *testing.T) {
	cfg := config.DefaultKittyConfig()
	g := newGame(t, cfg)

	// Dirty every piece of state.
	for i := 0; i < 300; i++ {
		g.Step(core.Command{MoveAxis: 1, JumpEdge: i%30 == 0})
	}
	g.level.Fish[0].Collected = true
	g.level.Dogs[0].Dead = true
	g.score = 4
	g.player.Lives = 1

	g.resetLevel()

	assert.Equal(t, newPlayer(cfg.Player), g.player)
	assert.Equal(t, 3, g.player.Lives)
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 0.0, g.camera)
	for _, f := range g.level.Fish {
		assert.False(t, f.Collected)
	}
	for i, d := range g.level.Dogs {
		assert.False(t, d.Dead)
		assert.Equal(t, cfg.Level.Dogs[i].X, d.X)
	}
	assert.False(t, g.level.Goal.Collected)
	assert.Equal(t, core.PhasePlaying, g.State().Phase)
}

func TestJumpFromRest(t *testing.T) {
	g := newGame(t, flatConfig())
	settle(t, g)
	require.Equal(t, 0.0, g.player.VY)

	res := g.Step(core.Command{JumpEdge: true})

	phys := g.cfg.Physics
	assert.Equal(t, phys.JumpForce+phys.Gravity, g.player.VY)
	assert.False(t, g.player.OnGround)
	assert.Equal(t, 1, g.player.JumpCount)
	assert.True(t, hasEvent(res.Events, core.EventJump))
}

func TestDoubleJumpBound(t *testing.T) {
	g := newGame(t, flatConfig())
	settle(t, g)
	phys := g.cfg.Physics

	g.Step(core.Command{JumpEdge: true})
	res := g.Step(core.Command{JumpEdge: true})
	assert.Equal(t, 2, g.player.JumpCount)
	assert.Equal(t, phys.JumpForce+phys.Gravity, g.player.VY)
	assert.True(t, hasEvent(res.Events, core.EventJump))

	res = g.Step(core.Command{JumpEdge: true})
	assert.Equal(t, 2, g.player.JumpCount)
	assert.Equal(t, phys.JumpForce+2*phys.Gravity, g.player.VY, "third jump must not relaunch")
	assert.False(t, hasEvent(res.Events, core.EventJump))
}

func TestLandingResetsJumpCount(t *testing.T) {
	g := newGame(t, flatConfig())
	settle(t, g)
	g.Step(core.Command{JumpEdge: true})
	g.Step(core.Command{JumpEdge: true})

	for i := 0; i < 200 && !g.player.OnGround; i++ {
		g.Step(core.Command{})
	}
	require.True(t, g.player.OnGround)
	assert.Equal(t, 2, g.player.JumpCount, "count clears on the tick after landing")

	g.Step(core.Command{})
	assert.Equal(t, 0, g.player.JumpCount)
}

func TestLeftBoundary(t *testing.T) {
	g := newGame(t, flatConfig())
	for i := 0; i < 60; i++ {
		g.Step(core.Command{MoveAxis: -1})
	}
	assert.Equal(t, 0.0, g.player.X)
	assert.Equal(t, -1, g.player.Facing)
}

func TestAnalogMoveScalesSpeed(t *testing.T) {
	g := newGame(t, flatConfig())
	g.Step(core.Command{MoveAxis: 0.5})
	assert.Equal(t, 2.5, g.player.VX)
	assert.Equal(t, 1, g.player.Facing)

	g.Step(core.Command{MoveAxis: 0.01})
	assert.Equal(t, 1, g.player.Facing, "tiny input keeps facing")
}

func TestDogPatrolPeriod(t *testing.T) {
	d := newDog(config.DogSpec{X: 300, Y: 530, Range: 100}, config.DefaultKittyConfig().Dog)

	for i := 0; i < 50; i++ {
		d.update()
	}
	assert.Equal(t, 400.0, d.X)
	assert.Less(t, d.VX, 0.0)
	assert.Equal(t, -1, d.Facing)

	for i := 0; i < 50; i++ {
		d.update()
	}
	assert.Equal(t, 300.0, d.X)
	assert.Greater(t, d.VX, 0.0)

	for i := 0; i < 100; i++ {
		d.update()
	}
	assert.Equal(t, 300.0, d.X, "cyclic with period 2*range/speed")

	d.Dead = true
	d.update()
	assert.Equal(t, 300.0, d.X, "dead dogs stop")
}

func TestStompOrDamageIsExclusive(t *testing.T) {
	tests := []struct {
		name       string
		y, vy      float64
		invincible int
		want       Contact
	}{
		{"falling from above", 500, 3, 0, ContactStomp},
		{"rising into dog", 500, -3, 0, ContactDamage},
		{"falling but too low", 515, 3, 0, ContactDamage},
		{"resting on same level", 505, 0, 0, ContactDamage},
		{"invincible", 505, -3, 10, ContactGrace},
		{"out of reach", 400, 3, 0, ContactNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, flatConfig())
			dog := newDog(config.DogSpec{X: 300, Y: 530, Range: 0}, g.cfg.Dog)
			g.player.X, g.player.Y, g.player.VY = 290, tt.y, tt.vy
			g.player.Invincible = tt.invincible
			lives := g.player.Lives

			got := g.touchDog(&dog)
			events := g.events.Drain()
			assert.Equal(t, tt.want, got)

			switch got {
			case ContactStomp:
				assert.True(t, dog.Dead)
				assert.Equal(t, g.cfg.Physics.JumpForce/g.cfg.Physics.StompBounceDivisor, g.player.VY)
				assert.Equal(t, 1, g.player.JumpCount)
				assert.Equal(t, lives, g.player.Lives)
				assert.True(t, hasEvent(events, core.EventStomp))
			case ContactDamage:
				assert.False(t, dog.Dead)
				assert.Equal(t, lives-1, g.player.Lives)
				assert.Equal(t, g.cfg.Player.InvincibilityFrames, g.player.Invincible)
				assert.True(t, hasEvent(events, core.EventHit))
			default:
				assert.False(t, dog.Dead)
				assert.Equal(t, lives, g.player.Lives)
				assert.Empty(t, events)
			}
		})
	}
}

func TestSweptLandingOnThinPlatform(t *testing.T) {
	tests := []struct {
		name     string
		gap, vy  float64 // gap is feet height above the platform top
		grounded bool
	}{
		{"fast fall", 5, 18, true},
		{"faster than the platform is thick", 5, 25, true},
		{"too far above", 30, 18, false},
		{"rising through", -5, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := flatConfig()
			cfg.Level.Platforms = []config.PlatformSpec{{X: 0, Y: 300, Width: 1000, Height: 20, Type: "platform"}}
			g := newGame(t, cfg)
			g.player.Y = 300 - g.player.H - tt.gap
			g.player.VY = tt.vy

			g.Step(core.Command{})
			assert.Equal(t, tt.grounded, g.player.OnGround)
			if tt.grounded {
				assert.Equal(t, 300.0, g.player.Y+g.player.H)
				assert.Equal(t, 0.0, g.player.VY)
			} else {
				assert.NotEqual(t, 0.0, g.player.VY)
			}
		})
	}
}

func TestContactOrdering(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		dogDead   bool
		goal      bool
		wantPhase core.Phase
		wantLives int
		wantGoal  bool
		want      []core.EventKind
	}{
		{"dead dog is harmless", 3, true, false, core.PhasePlaying, 3, false, nil},
		{"live dog hurts", 3, false, false, core.PhasePlaying, 2, false, []core.EventKind{core.EventHit}},
		{"last life lost on the goal", 1, false, true, core.PhaseLost, 0, false, []core.EventKind{core.EventGameOver}},
		{"goal with lives to spare", 3, true, true, core.PhaseWon, 3, true, []core.EventKind{core.EventWin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := flatConfig()
			cfg.Level.Dogs = []config.DogSpec{{X: 110, Y: 510, Range: 0}}
			if tt.goal {
				cfg.Level.Goal = config.GoalSpec{X: 130, Y: 521, Width: 60, Height: 35}
			}
			g := newGame(t, cfg)
			g.player.Lives = tt.lives
			g.level.Dogs[0].Dead = tt.dogDead

			var kinds []core.EventKind
			res := g.Step(core.Command{})
			for _, e := range res.Events {
				kinds = append(kinds, e.Kind)
			}
			assert.Equal(t, tt.want, kinds)
			assert.Equal(t, tt.wantPhase, res.State.Phase)
			assert.Equal(t, tt.wantLives, g.player.Lives)
			assert.Equal(t, tt.wantGoal, g.level.Goal.Collected)

			if tt.dogDead && !tt.goal {
				// Standing inside a dead dog for a while changes nothing.
				for i := 0; i < 90; i++ {
					res = g.Step(core.Command{})
					require.False(t, hasEvent(res.Events, core.EventHit), "tick %d", i)
				}
				assert.Equal(t, 3, g.player.Lives)
			}
		})
	}
}

func TestDamageDuringGraceIsNoop(t *testing.T) {
	p := newPlayer(config.DefaultKittyConfig().Player)
	assert.True(t, p.takeDamage(60))
	assert.False(t, p.takeDamage(60))
	assert.Equal(t, 2, p.Lives)

	p.Invincible = 0
	p.Lives = 0
	assert.False(t, p.takeDamage(60), "lives never go negative")
	assert.Equal(t, 0, p.Lives)
}

func TestFishCollectedOnce(t *testing.T) {
	cfg := flatConfig()
	cfg.Level.Fish = []config.PointSpec{{X: 130, Y: 521}}
	g := newGame(t, cfg)

	res := g.Step(core.Command{})
	assert.Equal(t, 1, res.State.Score)
	assert.True(t, hasEvent(res.Events, core.EventCollect))

	res = g.Step(core.Command{})
	assert.Equal(t, 1, res.State.Score)
	assert.False(t, hasEvent(res.Events, core.EventCollect))
}

func TestFallingOutResetsLevel(t *testing.T) {
	cfg := flatConfig()
	cfg.Level.Platforms = nil
	cfg.Level.Fish = []config.PointSpec{{X: 130, Y: 521}}
	g := newGame(t, cfg)

	sawReset := false
	for i := 0; i < 200 && !sawReset; i++ {
		res := g.Step(core.Command{})
		sawReset = hasEvent(res.Events, core.EventReset)
	}
	require.True(t, sawReset)
	assert.Equal(t, 3, g.player.Lives)
	assert.Equal(t, cfg.Player.StartX, g.player.X)
	assert.Equal(t, core.PhasePlaying, g.State().Phase)
}

func TestCameraMonotonic(t *testing.T) {
	g := newGame(t, flatConfig())
	last := g.camera
	for i := 0; i < 300; i++ {
		axis := 1.0
		if i >= 200 {
			axis = -1
		}
		g.Step(core.Command{MoveAxis: axis})
		assert.GreaterOrEqual(t, g.camera, last)
		last = g.camera
	}
	// 100 + 5*200 - 800/2
	assert.Equal(t, 700.0, g.camera)
}

func TestWinFreezesUntilRestart(t *testing.T) {
	cfg := flatConfig()
	cfg.Level.Goal = config.GoalSpec{X: 130, Y: 521, Width: 60, Height: 35}
	g := newGame(t, cfg)

	res := g.Step(core.Command{})
	require.Equal(t, core.PhaseWon, res.State.Phase)
	assert.True(t, hasEvent(res.Events, core.EventWin))

	x := g.player.X
	res = g.Step(core.Command{MoveAxis: 1, JumpEdge: true})
	assert.Equal(t, x, g.player.X)
	assert.Empty(t, res.Events)

	res = g.Step(core.Command{RestartEdge: true})
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.True(t, hasEvent(res.Events, core.EventReset))
	assert.False(t, g.level.Goal.Collected)
}

func TestLoseFreezesUntilRestart(t *testing.T) {
	cfg := flatConfig()
	cfg.Level.Dogs = []config.DogSpec{{X: 110, Y: 510, Range: 0}}
	g := newGame(t, cfg)
	g.player.Lives = 1

	res := g.Step(core.Command{})
	require.Equal(t, core.PhaseLost, res.State.Phase)
	assert.True(t, hasEvent(res.Events, core.EventGameOver))
	assert.Equal(t, 0, res.State.Lives)

	dogX, y := g.level.Dogs[0].X, g.player.Y
	for i := 0; i < 10; i++ {
		g.Step(core.Command{MoveAxis: 1})
	}
	assert.Equal(t, dogX, g.level.Dogs[0].X)
	assert.Equal(t, y, g.player.Y)

	res = g.Step(core.Command{RestartEdge: true})
	assert.Equal(t, 3, res.State.Lives)
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newGame(t, flatConfig())
	g.Step(core.Command{MoveAxis: 1})
	res := g.Step(core.Command{MoveAxis: 1, RestartEdge: true})
	assert.False(t, hasEvent(res.Events, core.EventReset))
	assert.Greater(t, g.player.X, 100.0)
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t, flatConfig())
	res := g.Step(core.Command{PauseEdge: true, MoveAxis: 1})
	assert.True(t, res.State.Paused)
	x := g.player.X

	g.Step(core.Command{MoveAxis: 1})
	assert.Equal(t, x, g.player.X)

	res = g.Step(core.Command{PauseEdge: true, MoveAxis: 1})
	assert.False(t, res.State.Paused)
	assert.Greater(t, g.player.X, x)
}

func TestResumeAudioOnFirstInteraction(t *testing.T) {
	g := newGame(t, flatConfig())
	res := g.Step(core.Command{Interacted: true, FirstInteraction: true})
	assert.True(t, hasEvent(res.Events, core.EventResumeAudio))
	res = g.Step(core.Command{Interacted: true})
	assert.False(t, hasEvent(res.Events, core.EventResumeAudio))
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	g := newGame(t, config.DefaultKittyConfig())
	rng := rand.New(rand.NewSource(7))

	prevFish := make([]bool, len(g.level.Fish))
	prevDead := make([]bool, len(g.level.Dogs))
	prevCamera := 0.0

	for i := 0; i < 5000; i++ {
		cmd := core.Command{
			MoveAxis:    float64(rng.Intn(3) - 1),
			JumpEdge:    rng.Intn(8) == 0,
			RestartEdge: rng.Intn(50) == 0,
		}
		res := g.Step(cmd)
		reset := hasEvent(res.Events, core.EventReset)

		require.GreaterOrEqual(t, g.player.Lives, 0)
		require.GreaterOrEqual(t, g.player.JumpCount, 0)
		require.LessOrEqual(t, g.player.JumpCount, 2)
		require.GreaterOrEqual(t, g.camera, 0.0)
		if !reset {
			require.GreaterOrEqual(t, g.camera, prevCamera, "tick %d", i)
			for j, f := range g.level.Fish {
				require.False(t, prevFish[j] && !f.Collected, "fish %d reverted at tick %d", j, i)
			}
			for j, d := range g.level.Dogs {
				require.False(t, prevDead[j] && !d.Dead, "dog %d revived at tick %d", j, i)
			}
		}

		prevCamera = g.camera
		for j, f := range g.level.Fish {
			prevFish[j] = f.Collected
		}
		for j, d := range g.level.Dogs {
			prevDead[j] = d.Dead
		}
	}
}

func TestEntitiesSkipDeadAndCollected(t *testing.T) {
	g := newGame(t, config.DefaultKittyConfig())
	count := func(kind core.EntityKind) int {
		n := 0
		for _, e := range g.Entities() {
			if e.Kind == kind {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 4, count(core.EntityDog))
	assert.Equal(t, 12, count(core.EntityFish))
	assert.Equal(t, 1, count(core.EntityPlayer))

	g.level.Dogs[0].Dead = true
	g.level.Fish[0].Collected = true
	assert.Equal(t, 3, count(core.EntityDog))
	assert.Equal(t, 11, count(core.EntityFish))
}

func TestRender(t *testing.T) {
	g := newGame(t, config.DefaultKittyConfig())
	for _, size := range [][2]int{{80, 24}, {10, 5}, {200, 60}} {
		scr := core.NewScreen(size[0], size[1])
		g.Render(scr)
		assert.True(t, strings.Contains(scr.Row(0), "Fish"), "hud on %v", size)
	}

	g.player.Lives = 0
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")
}
