package train

import (
	"github.com/vovakirdan/happy-arcade/internal/config"
	"github.com/vovakirdan/happy-arcade/internal/terrain"
)

// Train is the single authoritative state of the whole chain. Wagon and
// locomotive placement is derived from it every tick, never stored.
type Train struct {
	Distance    float64 // world units traveled
	Speed       float64
	TargetSpeed float64
	JumpY       float64 // shared hop offset, positive is up
	JumpVY      float64
	Completed   bool
}

func newTrain(sp config.TrainSpeed) Train {
	return Train{Speed: sp.Initial, TargetSpeed: sp.Initial}
}

// kick adds n discrete boosts to the target speed.
func (t *Train) kick(n int, amount float64) {
	t.TargetSpeed += float64(n) * amount
}

// startJump launches the hop. It only re-arms once the train is at rest.
func (t *Train) startJump(impulse float64) bool {
	if t.JumpY != 0 || t.JumpVY != 0 {
		return false
	}
	t.JumpVY = impulse
	return true
}

func (t *Train) hop(gravity float64) {
	if t.JumpY <= 0 && t.JumpVY == 0 {
		return
	}
	t.JumpY += t.JumpVY
	t.JumpVY -= gravity
	if t.JumpY <= 0 {
		t.JumpY = 0
		t.JumpVY = 0
	}
}

// updateSpeed moves the target speed, then low-pass filters the actual
// speed toward it. held is whether any boost input is down this tick.
func (t *Train) updateSpeed(held bool, sp config.TrainSpeed) {
	if held && !t.Completed {
		t.TargetSpeed += sp.HoldAccel
		if t.TargetSpeed > sp.Max {
			t.TargetSpeed = sp.Max
		}
	}

	decel := sp.DecayCoast
	if held {
		decel = sp.DecayHeld
	}
	if t.TargetSpeed > sp.Min && !t.Completed {
		t.TargetSpeed -= decel
		if t.TargetSpeed < sp.Min {
			t.TargetSpeed = sp.Min
		}
	}

	if t.Completed {
		t.TargetSpeed = 0
		t.Speed *= sp.StopFriction
		if t.Speed < sp.StopThreshold {
			t.Speed = 0
		}
	}

	lerp := sp.LerpCoast
	if held {
		lerp = sp.LerpHeld
	}
	t.Speed += (t.TargetSpeed - t.Speed) * lerp
}

// Pose is the derived placement of one chain unit in view space.
type Pose struct {
	MidX   float64 // horizontal center on screen
	WorldX float64 // Distance + MidX, where the terrain is sampled
	Y      float64 // rail contact point, y down
	Angle  float64 // rotation following the terrain slope
}

// chain computes poses from the train state and body layout.
type chain struct {
	body    config.TrainBody
	profile terrain.Profile
	anchor  float64 // view center - 50
	trackY  float64
}

func newChain(cfg config.TrainConfig) chain {
	return chain{
		body:    cfg.Train,
		profile: cfg.Terrain,
		anchor:  cfg.View.Width/2 - 50,
		trackY:  cfg.View.Height - cfg.Train.TrackOffset,
	}
}

func (c chain) pose(t *Train, midX float64) Pose {
	s := c.profile.At(t.Distance + midX)
	return Pose{
		MidX:   midX,
		WorldX: s.X,
		Y:      c.trackY - s.Height - t.JumpY,
		Angle:  s.Angle,
	}
}

// Locomotive returns the locomotive pose.
func (c chain) Locomotive(t *Train) Pose {
	return c.pose(t, c.anchor+c.body.LocoOffset)
}

// Wagon returns the pose of wagon i, counted back from the locomotive.
func (c chain) Wagon(t *Train, i int) Pose {
	spacing := c.body.WagonWidth + c.body.WagonGap
	return c.pose(t, c.anchor+c.body.LeadOffset-float64(i)*spacing)
}

// Wagons returns every wagon pose in order.
func (c chain) Wagons(t *Train) []Pose {
	out := make([]Pose, c.body.Wagons)
	for i := range out {
		out[i] = c.Wagon(t, i)
	}
	return out
}
