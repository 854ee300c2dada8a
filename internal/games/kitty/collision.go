package kitty

import (
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Contact is the outcome of touching a live dog.
type Contact int

const (
	ContactNone Contact = iota
	ContactStomp
	ContactDamage
	ContactGrace // overlap while invincible; nothing happens
)

// resolvePlatforms lands the player on any platform whose top surface the
// feet crossed this tick. Grounded is recomputed from scratch.
func (g *Game) resolvePlatforms() {
	p := &g.player
	p.OnGround = false
	margin := g.cfg.Physics.LandingMargin
	for _, pl := range g.level.Platforms {
		feet := p.Y + p.H
		if p.Box().OverlapsX(pl.Box) &&
			feet > pl.Box.Y &&
			feet < pl.Box.Y+p.VY+margin &&
			p.VY >= 0 {
			p.Y = pl.Box.Y - p.H
			p.VY = 0
			p.OnGround = true
		}
	}
}

// collectFish picks up every fish within reach of the player's center.
func (g *Game) collectFish() {
	reach := g.player.W/2 + g.cfg.Contact.FishRadius
	center := g.player.Center()
	for i := range g.level.Fish {
		f := &g.level.Fish[i]
		if f.Collected {
			continue
		}
		if center.Sub(f.Pos).Len() < reach {
			f.Collected = true
			g.score++
			g.events.Push(core.Event{Kind: core.EventCollect, Pos: f.Pos})
		}
	}
}

// stomps reports whether a falling player is far enough above the dog's
// midpoint to defeat it. The tolerance grows with the fall speed.
func stomps(p *Player, d *Dog) bool {
	return p.VY > 0 && p.Y+p.H < d.Y+d.H/2+p.VY
}

// touchDog resolves one player-dog overlap into exactly one outcome.
func (g *Game) touchDog(d *Dog) Contact {
	p := &g.player
	if !p.Box().CentersWithin(d.Box(), g.cfg.Contact.EnemyShrinkX, g.cfg.Contact.EnemyShrinkY) {
		return ContactNone
	}
	if stomps(p, d) {
		d.Dead = true
		p.VY = g.cfg.Physics.JumpForce / g.cfg.Physics.StompBounceDivisor
		p.JumpCount = 1
		g.events.Push(core.Event{Kind: core.EventStomp, Pos: d.Box().Center()})
		return ContactStomp
	}
	if !p.takeDamage(g.cfg.Player.InvincibilityFrames) {
		return ContactGrace
	}
	if p.Lives > 0 {
		g.events.Emit(core.EventHit)
	} else {
		g.events.Emit(core.EventGameOver)
	}
	return ContactDamage
}

// updateDogs moves the dogs and resolves contacts. Nothing happens once
// the goal is reached or the lives are gone.
func (g *Game) updateDogs() {
	for i := range g.level.Dogs {
		d := &g.level.Dogs[i]
		if !g.level.Goal.Collected && g.player.Lives > 0 {
			d.update()
		}
		if g.player.Lives > 0 && !g.level.Goal.Collected && !d.Dead {
			g.touchDog(d)
		}
	}
}

// checkGoal ends the level when the player reaches the bowl alive.
func (g *Game) checkGoal() {
	goal := &g.level.Goal
	if goal.Collected || g.player.Lives <= 0 {
		return
	}
	if g.player.Box().CentersWithin(goal.Box, 0, 0) {
		goal.Collected = true
		g.events.Push(core.Event{Kind: core.EventWin, Pos: goal.Box.Center()})
	}
}
