// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "github.com/vovakirdan/happy-arcade/internal/terrain"

// InputConfig tunes how host input is turned into commands.
type InputConfig struct {
	HoldTicks int     `yaml:"hold_ticks"` // ticks a terminal key press counts as held
	Deadzone  float64 `yaml:"deadzone"`   // analog stick deadzone
}

// KittyConfig contains all configuration for the Happy Kitty platformer.
type KittyConfig struct {
	World   KittyWorld   `yaml:"world"`
	Physics KittyPhysics `yaml:"physics"`
	Player  KittyPlayer  `yaml:"player"`
	Dog     KittyDog     `yaml:"dog"`
	Contact KittyContact `yaml:"contact"`
	Level   KittyLevel   `yaml:"level"`
	Input   InputConfig  `yaml:"input"`
}

// KittyWorld is the logical viewport in world units.
type KittyWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// KittyPhysics holds per-tick physics constants.
type KittyPhysics struct {
	Gravity            float64 `yaml:"gravity"`
	JumpForce          float64 `yaml:"jump_force"` // negative = up
	Speed              float64 `yaml:"speed"`
	FallMargin         float64 `yaml:"fall_margin"`          // below the viewport before a level reset
	LandingMargin      float64 `yaml:"landing_margin"`       // swept landing tolerance added to vy
	StompBounceDivisor float64 `yaml:"stomp_bounce_divisor"` // stomp bounce = jump_force / divisor
}

// KittyPlayer defines the player's spawn and body.
type KittyPlayer struct {
	StartX              float64 `yaml:"start_x"`
	StartY              float64 `yaml:"start_y"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Lives               int     `yaml:"lives"`
	InvincibilityFrames int     `yaml:"invincibility_frames"`
}

// KittyDog defines the patrolling enemy body.
type KittyDog struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// KittyContact holds pickup and contact tolerances.
type KittyContact struct {
	EnemyShrinkX float64 `yaml:"enemy_shrink_x"`
	EnemyShrinkY float64 `yaml:"enemy_shrink_y"`
	FishRadius   float64 `yaml:"fish_radius"` // added to half the player width
}

// KittyLevel is the static layout of the level.
type KittyLevel struct {
	Platforms []PlatformSpec `yaml:"platforms"`
	Fish      []PointSpec    `yaml:"fish"`
	Dogs      []DogSpec      `yaml:"dogs"`
	Goal      GoalSpec       `yaml:"goal"`
}

// PlatformSpec is a solid rectangle; Type is ground, platform or step.
type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Type   string  `yaml:"type"`
}

// PointSpec is a world position.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DogSpec places a dog patrolling [x, x+range].
type DogSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Range float64 `yaml:"range"`
}

// GoalSpec is the food bowl; X/Y is its center.
type GoalSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TrainConfig contains all configuration for the Happy Train runner.
type TrainConfig struct {
	View    TrainView       `yaml:"view"`
	Terrain terrain.Profile `yaml:"terrain"`
	Train   TrainBody       `yaml:"train"`
	Speed   TrainSpeed      `yaml:"speed"`
	Jump    TrainJump       `yaml:"jump"`
	Coal    TrainCoal       `yaml:"coal"`
	Smoke   TrainSmoke      `yaml:"smoke"`
	Chug    TrainChug       `yaml:"chug"`
	Level   TrainLevel      `yaml:"level"`
	Input   InputConfig     `yaml:"input"`
}

// TrainView is the logical viewport in world units.
type TrainView struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TrainBody describes the locomotive and wagon chain layout in screen
// space relative to the train anchor (view center - 50).
type TrainBody struct {
	Wagons      int     `yaml:"wagons"`
	WagonWidth  float64 `yaml:"wagon_width"`
	WagonGap    float64 `yaml:"wagon_gap"`
	LeadOffset  float64 `yaml:"lead_offset"`  // first wagon center from the anchor
	LocoOffset  float64 `yaml:"loco_offset"`  // locomotive center from the anchor
	TrackOffset float64 `yaml:"track_offset"` // rail height above the view bottom
}

// TrainSpeed is the target-speed and smoothing model.
type TrainSpeed struct {
	Initial       float64 `yaml:"initial"`
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
	BoostKick     float64 `yaml:"boost_kick"`
	HoldAccel     float64 `yaml:"hold_accel"`
	DecayHeld     float64 `yaml:"decay_held"`
	DecayCoast    float64 `yaml:"decay_coast"`
	LerpHeld      float64 `yaml:"lerp_held"`
	LerpCoast     float64 `yaml:"lerp_coast"`
	StopFriction  float64 `yaml:"stop_friction"`
	StopThreshold float64 `yaml:"stop_threshold"`
}

// TrainJump is the shared hop of the whole train.
type TrainJump struct {
	Impulse float64 `yaml:"impulse"`
	Gravity float64 `yaml:"gravity"`
}

// TrainCoal configures thrown coal and the locomotive hit-box.
type TrainCoal struct {
	Gravity       float64 `yaml:"gravity"`
	SpeedBonus    float64 `yaml:"speed_bonus"`
	LaunchVX      float64 `yaml:"launch_vx"`      // mean forward speed
	LaunchVXJit   float64 `yaml:"launch_vx_jit"`  // ± uniform jitter
	LaunchVYMin   float64 `yaml:"launch_vy_min"`  // upward speed range
	LaunchVYRange float64 `yaml:"launch_vy_range"`
	SpawnLift     float64 `yaml:"spawn_lift"` // above the wagon anchor
	HitHalfWidth  float64 `yaml:"hit_half_width"`
	HitAbove      float64 `yaml:"hit_above"`
	HitBelow      float64 `yaml:"hit_below"`
	ClickHalfW    float64 `yaml:"click_half_width"`
	ClickAbove    float64 `yaml:"click_above"`
	ClickBelow    float64 `yaml:"click_below"`
}

// TrainSmoke configures smoke particles.
type TrainSmoke struct {
	PuffsPerHit  int     `yaml:"puffs_per_hit"`
	Fade         float64 `yaml:"fade"`
	Drift        float64 `yaml:"drift"`         // fraction of train speed the smoke lags
	FunnelX      float64 `yaml:"funnel_x"`      // funnel offset from the locomotive anchor
	FunnelY      float64 `yaml:"funnel_y"`
	FunnelChance float64 `yaml:"funnel_chance"` // per-tick spawn chance per unit of speed
}

// TrainChug paces the engine sound.
type TrainChug struct {
	BaseMS float64 `yaml:"base_ms"`
	MinMS  float64 `yaml:"min_ms"`
}

// TrainLevel is the route.
type TrainLevel struct {
	TargetDistance float64      `yaml:"target_distance"`
	Tunnels        []TunnelSpec `yaml:"tunnels"`
}

// TunnelSpec is a tunnel starting at world x WorldX.
type TunnelSpec struct {
	WorldX float64 `yaml:"world_x"`
	Length float64 `yaml:"length"`
}
