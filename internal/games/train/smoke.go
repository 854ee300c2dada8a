package train

import (
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Puff is one smoke particle in view space. It fades out as Life drops
// from 1 to 0.
type Puff struct {
	Pos  core.Vec
	Vel  core.Vec
	Life float64
	Size float64
}

// puff spawns a cloud of smoke at p.
func (g *Game) puff(p core.Vec) {
	for i := 0; i < g.cfg.Smoke.PuffsPerHit; i++ {
		g.smoke = append(g.smoke, Puff{
			Pos: p,
			Vel: core.Vec{
				X: (g.rng.Float64() - 0.5) * 2,
				Y: -g.rng.Float64()*3 - 1,
			},
			Life: 1,
			Size: g.rng.Float64()*15 + 5,
		})
	}
}

// funnelSmoke puffs from the chimney with a chance that grows with speed.
func (g *Game) funnelSmoke() {
	sm := g.cfg.Smoke
	if g.rng.Float64() >= g.train.Speed*sm.FunnelChance {
		return
	}
	loco := g.chain.Locomotive(&g.train)
	off := core.Vec{X: sm.FunnelX, Y: sm.FunnelY}.Rotate(loco.Angle)
	g.puff(core.Vec{X: loco.MidX + off.X, Y: loco.Y + off.Y})
}

// updateSmoke drifts the particles behind the moving train and drops the
// faded ones.
func (g *Game) updateSmoke() {
	sm := g.cfg.Smoke
	kept := g.smoke[:0]
	for _, p := range g.smoke {
		p.Pos.X -= g.train.Speed * sm.Drift
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= sm.Fade
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.smoke = kept
}
