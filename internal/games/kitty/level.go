package kitty

import (
	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Platform is a static solid rectangle.
type Platform struct {
	Box  core.Box
	Kind core.EntityKind // EntityGround, EntityPlatform or EntityStep
}

// Fish is a collectible.
type Fish struct {
	Pos       core.Vec
	Collected bool
}

// Goal is the food bowl that ends the level.
type Goal struct {
	Box       core.Box
	Collected bool
}

// Level holds everything placed in the world. Platforms never change;
// fish, dogs and the goal carry one-way flags cleared only by reset.
type Level struct {
	Platforms []Platform
	Fish      []Fish
	Dogs      []Dog
	Goal      Goal
}

func platformKind(t string) core.EntityKind {
	switch t {
	case "ground":
		return core.EntityGround
	case "step":
		return core.EntityStep
	default:
		return core.EntityPlatform
	}
}

func newLevel(cfg config.KittyConfig) *Level {
	lv := &Level{
		Platforms: make([]Platform, 0, len(cfg.Level.Platforms)),
		Fish:      make([]Fish, 0, len(cfg.Level.Fish)),
		Dogs:      make([]Dog, 0, len(cfg.Level.Dogs)),
	}
	for _, p := range cfg.Level.Platforms {
		lv.Platforms = append(lv.Platforms, Platform{
			Box:  core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
			Kind: platformKind(p.Type),
		})
	}
	for _, f := range cfg.Level.Fish {
		lv.Fish = append(lv.Fish, Fish{Pos: core.Vec{X: f.X, Y: f.Y}})
	}
	for _, d := range cfg.Level.Dogs {
		lv.Dogs = append(lv.Dogs, newDog(d, cfg.Dog))
	}
	g := cfg.Level.Goal
	lv.Goal = Goal{Box: core.Box{X: g.X - g.Width/2, Y: g.Y - g.Height/2, W: g.Width, H: g.Height}}
	return lv
}

// reset clears every one-way flag and puts dogs back at their start.
func (lv *Level) reset() {
	for i := range lv.Fish {
		lv.Fish[i].Collected = false
	}
	for i := range lv.Dogs {
		lv.Dogs[i].reset()
	}
	lv.Goal.Collected = false
}

// FishCollected returns how many fish have been picked up.
func (lv *Level) FishCollected() int {
	n := 0
	for _, f := range lv.Fish {
		if f.Collected {
			n++
		}
	}
	return n
}
