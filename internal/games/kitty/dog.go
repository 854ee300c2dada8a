package kitty

import (
	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/core"
)

// Dog patrols [StartX, StartX+Range] until stomped.
type Dog struct {
	StartX float64
	X, Y   float64
	W, H   float64
	Range  float64
	Speed  float64
	VX     float64
	Facing int
	Dead   bool
}

func newDog(spec config.DogSpec, body config.KittyDog) Dog {
	d := Dog{
		StartX: spec.X,
		Y:      spec.Y,
		W:      body.Width,
		H:      body.Height,
		Range:  spec.Range,
		Speed:  body.Speed,
	}
	d.reset()
	return d
}

func (d *Dog) reset() {
	d.X = d.StartX
	d.VX = d.Speed
	d.Facing = 1
	d.Dead = false
}

// Box returns the dog's bounds.
func (d *Dog) Box() core.Box {
	return core.Box{X: d.X, Y: d.Y, W: d.W, H: d.H}
}

// update moves the dog one tick. Reaching a patrol bound snaps to it and
// turns around, so a full lap takes exactly 2*Range/Speed ticks.
func (d *Dog) update() {
	if d.Dead {
		return
	}
	d.X += d.VX
	switch {
	case d.X >= d.StartX+d.Range:
		d.X = d.StartX + d.Range
		d.VX = -d.Speed
		d.Facing = -1
	case d.X <= d.StartX:
		d.X = d.StartX
		d.VX = d.Speed
		d.Facing = 1
	}
}
