package train

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

func newGame(t *testing.T, cfg config.TrainConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func randomCommand(rng *rand.Rand) core.Command {
	cmd := core.Command{
		JumpEdge:  rng.Intn(20) == 0,
		ThrowEdge: rng.Intn(10) == 0,
		BoostHeld: rng.Intn(2) == 0,
	}
	if rng.Intn(6) == 0 {
		cmd.BoostPresses = 1 + rng.Intn(2)
	}
	if rng.Intn(30) == 0 {
		cmd.Click = &core.Vec{X: rng.Float64(), Y: rng.Float64()}
	}
	return cmd
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("train"))
}

func TestPosesDerivedFromDistance(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	g := newGame(t, cfg)
	for i := 0; i < 137; i++ {
		g.Step(core.Command{BoostHeld: true, JumpEdge: i == 100})
	}

	tr := g.Train()
	anchor := cfg.View.Width/2 - 50
	trackY := cfg.View.Height - cfg.Train.TrackOffset

	check := func(p Pose, midX float64) {
		worldX := tr.Distance + midX
		assert.Equal(t, midX, p.MidX)
		assert.InDelta(t, worldX, p.WorldX, 1e-9)
		assert.InDelta(t, trackY-cfg.Terrain.Height(worldX)-tr.JumpY, p.Y, 1e-9)
		assert.InDelta(t, cfg.Terrain.Angle(worldX), p.Angle, 1e-12)
	}

	check(g.Locomotive(), anchor+cfg.Train.LocoOffset)
	wagons := g.Wagons()
	require.Len(t, wagons, cfg.Train.Wagons)
	for i, w := range wagons {
		check(w, anchor+cfg.Train.LeadOffset-float64(i)*(cfg.Train.WagonWidth+cfg.Train.WagonGap))
	}
}

func TestBoostPressKicksTargetSpeed(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())

	res := g.Step(core.Command{BoostPresses: 2, BoostHeld: true})
	// 2 + 2*0.5 kick, +0.05 held accel, -0.005 held decay
	assert.InDelta(t, 3.045, g.train.TargetSpeed, 1e-9)
	assert.Equal(t, 1, countEvents(res.Events, core.EventBoost))

	res = g.Step(core.Command{BoostPresses: 1, BoostHeld: true, BoostWasHeld: true})
	assert.Equal(t, 0, countEvents(res.Events, core.EventBoost), "no whistle while already boosting")
	assert.InDelta(t, 3.045+0.5+0.05-0.005, g.train.TargetSpeed, 1e-9)
}

func TestHoldIsCapped(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())
	for i := 0; i < 2000; i++ {
		g.Step(core.Command{BoostHeld: true})
	}
	assert.LessOrEqual(t, g.train.TargetSpeed, g.cfg.Speed.Max)
	assert.InDelta(t, g.cfg.Speed.Max, g.train.Speed, 0.1)
}

func TestCoastDecaysToBaseline(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())
	g.train.TargetSpeed = 10
	g.train.Speed = 10
	for i := 0; i < 500; i++ {
		g.Step(core.Command{})
	}
	assert.Equal(t, g.cfg.Speed.Min, g.train.TargetSpeed)
	assert.InDelta(t, g.cfg.Speed.Min, g.train.Speed, 1e-6)
}

func TestDistanceNeverDecreases(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())
	rng := rand.New(rand.NewSource(3))
	last := 0.0
	for i := 0; i < 3000; i++ {
		res := g.Step(randomCommand(rng))
		require.GreaterOrEqual(t, res.State.Speed, 0.0)
		require.GreaterOrEqual(t, res.State.Distance, last)
		if res.State.Speed > 0 {
			require.Greater(t, res.State.Distance, last)
		}
		last = res.State.Distance
	}
}

func TestCoalMissIsRemovedWithoutBoost(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	g := newGame(t, cfg)
	twin := newGame(t, cfg)

	// Thrown backwards, far from the locomotive.
	g.coal = append(g.coal, Coal{Pos: core.Vec{X: 100, Y: 300}, Vel: core.Vec{X: -5, Y: -8}})

	for i := 0; i < 200 && len(g.coal) > 0; i++ {
		res := g.Step(core.Command{})
		twin.Step(core.Command{})
		assert.Equal(t, 0, countEvents(res.Events, core.EventHit))
	}
	assert.Empty(t, g.coal)
	assert.Equal(t, 0, g.delivered)
	assert.Equal(t, twin.Train(), g.Train())
}

func TestCoalHitBoostsAndPuffs(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	g := newGame(t, cfg)
	twin := newGame(t, cfg)

	loco := g.Locomotive()
	g.coal = append(g.coal, Coal{Pos: core.Vec{X: loco.MidX, Y: loco.Y - 50}})

	res := g.Step(core.Command{})
	twin.Step(core.Command{})

	assert.Equal(t, 1, countEvents(res.Events, core.EventHit))
	assert.Empty(t, g.coal)
	assert.Equal(t, 1, res.State.Score)
	assert.InDelta(t, cfg.Coal.SpeedBonus, g.train.TargetSpeed-twin.train.TargetSpeed, 1e-9)
	assert.GreaterOrEqual(t, len(g.smoke), cfg.Smoke.PuffsPerHit)
}

func TestThrowLaunchesFromFirstWagon(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())
	w := g.Wagons()[0]

	res := g.Step(core.Command{ThrowEdge: true})
	require.Len(t, g.coal, 1)
	assert.Equal(t, 1, countEvents(res.Events, core.EventThrow))

	c := g.coal[0]
	assert.GreaterOrEqual(t, c.Vel.X, 4.0)
	assert.LessOrEqual(t, c.Vel.X, 6.0)
	// one tick of gravity already applied
	assert.GreaterOrEqual(t, c.Vel.Y, -14.5)
	assert.LessOrEqual(t, c.Vel.Y, -4.5)
	assert.InDelta(t, w.MidX+c.Vel.X, c.Pos.X, 1e-9)
}

func TestClickThrowsFromClickedWagon(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	g := newGame(t, cfg)
	w := g.Wagons()[3]

	click := &core.Vec{X: w.MidX / cfg.View.Width, Y: (w.Y - 20) / cfg.View.Height}
	res := g.Step(core.Command{Click: click})
	require.Len(t, g.coal, 1)
	assert.Equal(t, 1, countEvents(res.Events, core.EventThrow))
	assert.InDelta(t, w.MidX, g.coal[0].Pos.X, 6)

	res = g.Step(core.Command{Click: &core.Vec{X: 0.5, Y: 0.02}})
	assert.Equal(t, 0, countEvents(res.Events, core.EventThrow), "sky is not a wagon")
}

func TestHopRearmsOnlyAtRest(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())

	res := g.Step(core.Command{JumpEdge: true})
	assert.Equal(t, 1, countEvents(res.Events, core.EventJump))
	assert.Equal(t, 12.0, g.train.JumpY)
	assert.Equal(t, 11.5, g.train.JumpVY)

	res = g.Step(core.Command{JumpEdge: true})
	assert.Equal(t, 0, countEvents(res.Events, core.EventJump))

	landed := false
	for i := 0; i < 100; i++ {
		g.Step(core.Command{})
		require.GreaterOrEqual(t, g.train.JumpY, 0.0)
		if g.train.JumpY == 0 {
			landed = true
			break
		}
	}
	require.True(t, landed)
	assert.Equal(t, 0.0, g.train.JumpVY)

	res = g.Step(core.Command{JumpEdge: true})
	assert.Equal(t, 1, countEvents(res.Events, core.EventJump))
}

func TestCompletionIsTerminal(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	cfg.Level.TargetDistance = 50
	g := newGame(t, cfg)

	completes := 0
	last := 0.0
	for i := 0; i < 600; i++ {
		wasCompleted := g.train.Completed
		res := g.Step(core.Command{BoostPresses: 1, BoostHeld: true, ThrowEdge: true, JumpEdge: true, PauseEdge: i > 100})
		completes += countEvents(res.Events, core.EventComplete)
		require.GreaterOrEqual(t, res.State.Distance, last)
		last = res.State.Distance
		if wasCompleted {
			assert.Equal(t, core.PhaseComplete, res.State.Phase)
			assert.False(t, res.State.Paused)
			assert.Zero(t, countEvents(res.Events, core.EventBoost))
			assert.Zero(t, countEvents(res.Events, core.EventJump))
		}
	}

	assert.Equal(t, 1, completes)
	assert.Equal(t, 0.0, g.train.TargetSpeed)
	assert.Equal(t, 0.0, g.train.Speed)
	assert.GreaterOrEqual(t, g.train.Distance, cfg.Level.TargetDistance)

	res := g.Step(core.Command{})
	assert.Equal(t, 0, countEvents(res.Events, core.EventChug), "a stopped train is silent")
}

func TestTunnelHonksOnce(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	cfg.Level.Tunnels = []config.TunnelSpec{{WorldX: 770, Length: 300}}
	g := newGame(t, cfg)

	honks := 0
	for i := 0; i < 100; i++ {
		res := g.Step(core.Command{})
		honks += countEvents(res.Events, core.EventHonk)
	}
	assert.Equal(t, 1, honks)
	assert.True(t, g.tunnels[0].Honked)
}

func TestTunnelBoundsAreExclusive(t *testing.T) {
	tn := Tunnel{WorldX: 100, Length: 50}
	assert.False(t, tn.Contains(100))
	assert.True(t, tn.Contains(100.5))
	assert.True(t, tn.Contains(149.9))
	assert.False(t, tn.Contains(150))
}

func TestChugPacing(t *testing.T) {
	cc := config.DefaultTrainConfig().Chug
	assert.Equal(t, 500.0, chugInterval(2, cc))
	assert.Equal(t, 60.0, chugInterval(25, cc))

	var p chugPacer
	chugs := 0
	for i := 0; i < 600; i++ {
		if ev, ok := p.tick(1000.0/60, 2, cc); ok {
			chugs++
			assert.Equal(t, core.EventChug, ev.Kind)
			assert.Equal(t, 500.0, ev.Interval)
		}
	}
	assert.Equal(t, 20, chugs)

	var stopped chugPacer
	_, ok := stopped.tick(1000.0/60, 0, cc)
	assert.False(t, ok)
}

func TestSmokeFadesOut(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())
	g.puff(core.Vec{X: 600, Y: 300})
	require.Len(t, g.smoke, 5)
	for i := 0; i < 60; i++ {
		g.updateSmoke()
	}
	assert.Empty(t, g.smoke)
}

func TestSameSeedSameRun(t *testing.T) {
	cfg := config.DefaultTrainConfig()
	a, b := newGame(t, cfg), newGame(t, cfg)
	ra, rb := rand.New(rand.NewSource(9)), rand.New(rand.NewSource(9))
	for i := 0; i < 2000; i++ {
		require.Equal(t, a.Step(randomCommand(ra)), b.Step(randomCommand(rb)), "tick %d", i)
	}
}

func TestEntitiesAndRender(t *testing.T) {
	g := newGame(t, config.DefaultTrainConfig())
	res := g.Step(core.Command{ThrowEdge: true})

	kinds := map[core.EntityKind]int{}
	for _, e := range res.Entities {
		kinds[e.Kind]++
	}
	assert.Equal(t, 8, kinds[core.EntityWagon])
	assert.Equal(t, 1, kinds[core.EntityLocomotive])
	assert.Equal(t, 1, kinds[core.EntityCoal])

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.Row(0), "Speed:")
	assert.Contains(t, scr.Row(0), "Distance: 0.0 km")

	g.train.Completed = true
	g.Render(scr)
	assert.Contains(t, scr.String(), "LEVEL COMPLETE!")

	g.Render(core.NewScreen(5, 3))
}
