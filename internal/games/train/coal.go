package train

import (
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Coal is a thrown lump in view space.
type Coal struct {
	Pos     core.Vec
	Vel     core.Vec
	Reached bool // hit the locomotive; removed the same tick
}

// throwCoal launches a lump from wagon i toward the locomotive.
func (g *Game) throwCoal(i int) {
	if i < 0 || i >= g.cfg.Train.Wagons {
		return
	}
	cc := g.cfg.Coal
	w := g.chain.Wagon(&g.train, i)
	c := Coal{
		Pos: core.Vec{X: w.MidX, Y: w.Y - cc.SpawnLift},
		Vel: core.Vec{
			X: (g.rng.Float64()-0.5)*2*cc.LaunchVXJit + cc.LaunchVX,
			Y: -g.rng.Float64()*cc.LaunchVYRange - cc.LaunchVYMin,
		},
	}
	g.coal = append(g.coal, c)
	g.events.Push(core.Event{Kind: core.EventThrow, Pos: c.Pos})
}

// wagonAt returns the wagon under a view-space point, or -1.
func (g *Game) wagonAt(p core.Vec) int {
	cc := g.cfg.Coal
	for i := 0; i < g.cfg.Train.Wagons; i++ {
		w := g.chain.Wagon(&g.train, i)
		if p.X > w.MidX-cc.ClickHalfW && p.X < w.MidX+cc.ClickHalfW &&
			p.Y > w.Y-cc.ClickAbove && p.Y < w.Y+cc.ClickBelow {
			return i
		}
	}
	return -1
}

// locoHit reports whether p is inside the locomotive's catch box.
func (g *Game) locoHit(p core.Vec, loco Pose) bool {
	cc := g.cfg.Coal
	return p.X > loco.MidX-cc.HitHalfWidth && p.X < loco.MidX+cc.HitHalfWidth &&
		p.Y > loco.Y-cc.HitAbove && p.Y < loco.Y+cc.HitBelow
}

// updateCoal integrates every lump, delivers the ones that reach the
// locomotive and drops the ones that fell out of view.
func (g *Game) updateCoal() {
	cc := g.cfg.Coal
	loco := g.chain.Locomotive(&g.train)
	kept := g.coal[:0]
	for _, c := range g.coal {
		c.Pos = c.Pos.Add(c.Vel)
		c.Vel.Y += cc.Gravity

		if !c.Reached && g.locoHit(c.Pos, loco) {
			c.Reached = true
			g.train.kick(1, cc.SpeedBonus)
			g.delivered++
			g.events.Push(core.Event{Kind: core.EventHit, Pos: c.Pos})
			g.puff(c.Pos)
			continue
		}
		if c.Pos.Y < g.cfg.View.Height {
			kept = append(kept, c)
		}
	}
	g.coal = kept
}
