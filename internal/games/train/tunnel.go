package train

import (
	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Tunnel is a span of track in world space.
type Tunnel struct {
	WorldX float64
	Length float64
	Honked bool
}

func newTunnels(specs []config.TunnelSpec) []Tunnel {
	out := make([]Tunnel, len(specs))
	for i, s := range specs {
		out[i] = Tunnel{WorldX: s.WorldX, Length: s.Length}
	}
	return out
}

// Contains reports whether world x lies strictly inside the tunnel.
func (t Tunnel) Contains(x float64) bool {
	return x > t.WorldX && x < t.WorldX+t.Length
}

// checkTunnels honks once per tunnel, the first tick the locomotive is in.
func (g *Game) checkTunnels() {
	loco := g.chain.Locomotive(&g.train)
	for i := range g.tunnels {
		t := &g.tunnels[i]
		if !t.Honked && t.Contains(loco.WorldX) {
			t.Honked = true
			g.events.Push(core.Event{Kind: core.EventHonk, Pos: core.Vec{X: loco.MidX, Y: loco.Y}})
		}
	}
}
