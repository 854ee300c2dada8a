package kitty

import (
	"math"

	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Player is the kitty. Position is the top-left corner in world units.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Facing     int // +1 right, -1 left
	Lives      int
	Invincible int // frames of damage grace left; 0 = vulnerable
	JumpCount  int // 0 on the ground, 1 after a jump, 2 after the double jump
	OnGround   bool
}

func newPlayer(cfg config.KittyPlayer) Player {
	var p Player
	p.reset(cfg)
	return p
}

// reset restores the spawn state. Lives are refilled.
func (p *Player) reset(cfg config.KittyPlayer) {
	*p = Player{
		X:      cfg.StartX,
		Y:      cfg.StartY,
		W:      cfg.Width,
		H:      cfg.Height,
		Facing: 1,
		Lives:  cfg.Lives,
	}
}

// Box returns the player's bounds.
func (p *Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center returns the center of the player's bounds.
func (p *Player) Center() core.Vec {
	return p.Box().Center()
}

// update runs one tick of movement. It reports whether a jump (single or
// double) started this tick.
func (p *Player) update(cmd core.Command, phys config.KittyPhysics) bool {
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.OnGround {
		p.JumpCount = 0
	}

	p.VX = cmd.MoveAxis * phys.Speed
	if p.VX > 0.1 {
		p.Facing = 1
	} else if p.VX < -0.1 {
		p.Facing = -1
	}

	jumped := false
	if cmd.JumpEdge {
		switch {
		case p.OnGround:
			p.VY = phys.JumpForce
			p.OnGround = false
			p.JumpCount = 1
			jumped = true
		case p.JumpCount < 2:
			p.VY = phys.JumpForce
			p.JumpCount = 2
			jumped = true
		}
	}

	p.VY += phys.Gravity
	p.X += p.VX
	p.Y += p.VY

	p.X = math.Max(p.X, 0)
	return jumped
}

// takeDamage costs one life unless the grace window is running. It reports
// whether a life was lost.
func (p *Player) takeDamage(graceFrames int) bool {
	if p.Invincible > 0 || p.Lives <= 0 {
		return false
	}
	p.Lives--
	p.Invincible = graceFrames
	return true
}
