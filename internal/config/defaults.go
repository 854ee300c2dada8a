package config

import (
	_ "embed"

	"github.com/vovakirdan/happy-arcade/internal/terrain"
)

//go:embed defaults/kitty.yaml
var defaultKittyYAML []byte

//go:embed defaults/train.yaml
var defaultTrainYAML []byte

// DefaultInputConfig returns the default input tuning.
func DefaultInputConfig() InputConfig {
	return InputConfig{
		HoldTicks: 8,
		Deadzone:  0.1,
	}
}

// DefaultKittyConfig returns the default Happy Kitty configuration.
func DefaultKittyConfig() KittyConfig {
	return KittyConfig{
		World: KittyWorld{Width: 800, Height: 600},
		Physics: KittyPhysics{
			Gravity:            0.5,
			JumpForce:          -12,
			Speed:              5,
			FallMargin:         100,
			LandingMargin:      10,
			StompBounceDivisor: 1.5,
		},
		Player: KittyPlayer{
			StartX:              100,
			StartY:              500,
			Width:               60,
			Height:              40,
			Lives:               3,
			InvincibilityFrames: 60, // 1 second at 60fps
		},
		Dog: KittyDog{Width: 40, Height: 30, Speed: 2},
		Contact: KittyContact{
			EnemyShrinkX: 10,
			EnemyShrinkY: 5,
			FishRadius:   10,
		},
		Level: KittyLevel{
			Platforms: []PlatformSpec{
				// Ground sections with gaps
				{X: 0, Y: 560, Width: 500, Height: 40, Type: "ground"},
				{X: 700, Y: 560, Width: 600, Height: 40, Type: "ground"},
				{X: 1500, Y: 560, Width: 1000, Height: 40, Type: "ground"},
				// Floating platforms
				{X: 300, Y: 450, Width: 150, Height: 20, Type: "platform"},
				{X: 550, Y: 350, Width: 150, Height: 20, Type: "platform"},
				{X: 800, Y: 250, Width: 150, Height: 20, Type: "platform"},
				{X: 1100, Y: 300, Width: 150, Height: 20, Type: "platform"},
				{X: 1350, Y: 420, Width: 150, Height: 20, Type: "platform"},
				// Steps
				{X: 1800, Y: 460, Width: 100, Height: 100, Type: "step"},
				{X: 1950, Y: 360, Width: 100, Height: 200, Type: "step"},
				{X: 2100, Y: 260, Width: 100, Height: 300, Type: "step"},
				// Final high platform
				{X: 2300, Y: 200, Width: 200, Height: 20, Type: "platform"},
			},
			Fish: []PointSpec{
				{X: 350, Y: 400}, {X: 550, Y: 300}, {X: 850, Y: 200},
				{X: 1150, Y: 250}, {X: 1400, Y: 370}, {X: 1850, Y: 410},
				{X: 2000, Y: 310}, {X: 2150, Y: 210}, {X: 2400, Y: 150},
				{X: 200, Y: 530}, {X: 900, Y: 530}, {X: 1600, Y: 530},
			},
			Dogs: []DogSpec{
				{X: 800, Y: 530, Range: 400},
				{X: 1600, Y: 530, Range: 500},
				{X: 300, Y: 420, Range: 100},
				{X: 1100, Y: 270, Range: 100},
			},
			Goal: GoalSpec{X: 2450, Y: 190, Width: 60, Height: 35},
		},
		Input: DefaultInputConfig(),
	}
}

// DefaultTrainConfig returns the default Happy Train configuration.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		View:    TrainView{Width: 1200, Height: 600},
		Terrain: terrain.Default(),
		Train: TrainBody{
			Wagons:      8,
			WagonWidth:  120,
			WagonGap:    20,
			LeadOffset:  60,
			LocoOffset:  210,
			TrackOffset: 80,
		},
		Speed: TrainSpeed{
			Initial:       2,
			Min:           2,
			Max:           25,
			BoostKick:     0.5,
			HoldAccel:     0.05,
			DecayHeld:     0.005,
			DecayCoast:    0.1,
			LerpHeld:      0.15,
			LerpCoast:     0.1,
			StopFriction:  0.98,
			StopThreshold: 0.1,
		},
		Jump: TrainJump{Impulse: 12, Gravity: 0.5},
		Coal: TrainCoal{
			Gravity:       0.5,
			SpeedBonus:    0.5,
			LaunchVX:      5,
			LaunchVXJit:   1,
			LaunchVYMin:   5,
			LaunchVYRange: 10,
			SpawnLift:     30,
			HitHalfWidth:  70,
			HitAbove:      100,
			HitBelow:      20,
			ClickHalfW:    60,
			ClickAbove:    60,
			ClickBelow:    20,
		},
		Smoke: TrainSmoke{
			PuffsPerHit:  5,
			Fade:         0.02,
			Drift:        0.5,
			FunnelX:      35,
			FunnelY:      -110,
			FunnelChance: 1.0 / 20,
		},
		Chug: TrainChug{BaseMS: 500, MinMS: 60},
		Level: TrainLevel{
			TargetDistance: 100000, // 10 km at 10,000 units per km
			Tunnels: []TunnelSpec{
				{WorldX: 20000, Length: 4000},
				{WorldX: 55000, Length: 5000},
				{WorldX: 85000, Length: 4000},
			},
		},
		Input: DefaultInputConfig(),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "kitty":
		return defaultKittyYAML
	case "train":
		return defaultTrainYAML
	default:
		return nil
	}
}
