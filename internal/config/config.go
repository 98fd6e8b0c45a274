// Package config provides YAML-based tuning for the platformer: player and
// enemy physics, camera smoothing, input hold time and level flow timing.
// Fractional values are written as ratios ("1/16") or decimals and parsed
// straight into fixed point, never through float64.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/fixnum"
)

// PlatformerConfig contains all tuning for the platformer.
type PlatformerConfig struct {
	Player PlayerConfig `yaml:"player"`
	Boar   BoarConfig   `yaml:"boar"`
	Camera CameraConfig `yaml:"camera"`
	Input  InputConfig  `yaml:"input"`
	Timing TimingConfig `yaml:"timing"`
}

// PlayerConfig defines the warrior's movement and animation tuning.
type PlayerConfig struct {
	CollisionBox Size   `yaml:"collision_box"` // Full AABB size in pixels
	SpawnOffset  Offset `yaml:"spawn_offset"`  // Added to the level's player start

	GroundAccel    Fixed    `yaml:"ground_accel"`    // Per unit of horizontal input
	GroundFriction Fraction `yaml:"ground_friction"` // Velocity multiplier while grounded
	AirAccel       Fixed    `yaml:"air_accel"`
	AirDamping     Fraction `yaml:"air_damping"`
	Gravity        Fixed    `yaml:"gravity"`
	JumpSpeed      Fixed    `yaml:"jump_speed"`    // Upward speed set by a jump
	LandingSpeed   Fixed    `yaml:"landing_speed"` // Fall speed above which touching ground counts as landing
	PoseDeadband   Fixed    `yaml:"pose_deadband"` // Vertical speed below which no rising/falling pose is shown

	AttackOffset int `yaml:"attack_offset"` // Sprite shift while attacking facing right
	AttackHold   int `yaml:"attack_hold"`   // Extra ticks on the last attack frame

	IdleFrameTicks   int `yaml:"idle_frame_ticks"`
	RunFrameTicks    int `yaml:"run_frame_ticks"`
	JumpFrameTicks   int `yaml:"jump_frame_ticks"`
	AttackFrameTicks int `yaml:"attack_frame_ticks"`
}

// BoarConfig defines the charging boar.
type BoarConfig struct {
	CollisionBox    Size   `yaml:"collision_box"`
	SpawnOffset     Offset `yaml:"spawn_offset"`
	ProximityRadius int    `yaml:"proximity_radius"` // Player closer than this starts a charge
	HitRadius       int    `yaml:"hit_radius"`       // Player closer than this is in contact
	RunSpeed        Fixed  `yaml:"run_speed"`
	RunFrames       int    `yaml:"run_frames"`   // Charge length in animation frames
	DeathFrames     int    `yaml:"death_frames"` // Hit animation length before removal
	FrameTicks      int    `yaml:"frame_ticks"`  // Ticks per run/death frame
	IdleFrameTicks  int    `yaml:"idle_frame_ticks"`
	StopDistance    int    `yaml:"stop_distance"` // Manhattan distance to an enemy stop that halts movement
}

// CameraConfig defines scroll smoothing.
type CameraConfig struct {
	TargetRatio Fraction `yaml:"target_ratio"` // Scale applied to the player position to get the aim point
	Smoothing   int      `yaml:"smoothing"`    // Weight of the current centre against the aim point
}

// InputConfig defines terminal input behavior.
type InputConfig struct {
	// HoldTicks is how long a direction counts as held after its last key
	// event. Terminals report presses and repeats but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// TimingConfig defines level flow pacing in ticks.
type TimingConfig struct {
	BannerTicks    int `yaml:"banner_ticks"`     // "Level N" title card
	DeathSteps     int `yaml:"death_steps"`      // Frames in the death sequence
	DeathStepTicks int `yaml:"death_step_ticks"` // Ticks each death frame is shown
	DeathSkipStep  int `yaml:"death_skip_step"`  // Death frame shown for a single tick
}

// Size is a width/height pair in pixels.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Point returns the size as a fixed-point friendly integer pair.
func (s Size) Point() fixnum.Point { return fixnum.P(s.W, s.H) }

// Offset is an x/y displacement in pixels.
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Vec returns the offset as a fixed-point vector.
func (o Offset) Vec() fixnum.Vec2 { return fixnum.VI(o.X, o.Y) }

// Fixed is a fixed-point number in YAML. It accepts integers, decimals and
// ratios such as "3/2".
type Fixed struct {
	fixnum.Num
}

// F wraps a fixed-point value.
func F(n fixnum.Num) Fixed { return Fixed{n} }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Fixed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %s", value.Line, kindName(value.Kind))
	}
	n, err := fixnum.Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	f.Num = n
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Fixed) MarshalYAML() (any, error) {
	return f.Num.String(), nil
}

// Fraction is an exact integer ratio applied as multiply-then-divide.
// Damping uses it instead of Fixed so velocities truncate toward zero and
// settle at exactly 0.
type Fraction struct {
	Num, Den int
}

// Apply scales v by the fraction.
func (r Fraction) Apply(v fixnum.Vec2) fixnum.Vec2 {
	return v.MulInt(r.Num).DivInt(r.Den)
}

// ApplyPoint scales an integer point by the fraction.
func (r Fraction) ApplyPoint(p fixnum.Point) fixnum.Point {
	return p.MulInt(r.Num).DivInt(r.Den)
}

func (r Fraction) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Fraction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a ratio, got %s", value.Line, kindName(value.Kind))
	}
	num, den, ok := strings.Cut(value.Value, "/")
	if !ok {
		den = "1"
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return fmt.Errorf("line %d: invalid ratio %q", value.Line, value.Value)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || d <= 0 {
		return fmt.Errorf("line %d: invalid ratio %q", value.Line, value.Value)
	}
	r.Num, r.Den = n, d
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Fraction) MarshalYAML() (any, error) {
	return r.String(), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	default:
		return "a non-scalar"
	}
}

// Validate reports tuning values the game cannot run with.
func (c PlatformerConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"player.collision_box.w", c.Player.CollisionBox.W},
		{"player.collision_box.h", c.Player.CollisionBox.H},
		{"player.idle_frame_ticks", c.Player.IdleFrameTicks},
		{"player.run_frame_ticks", c.Player.RunFrameTicks},
		{"player.jump_frame_ticks", c.Player.JumpFrameTicks},
		{"player.attack_frame_ticks", c.Player.AttackFrameTicks},
		{"boar.collision_box.w", c.Boar.CollisionBox.W},
		{"boar.collision_box.h", c.Boar.CollisionBox.H},
		{"boar.frame_ticks", c.Boar.FrameTicks},
		{"boar.idle_frame_ticks", c.Boar.IdleFrameTicks},
		{"player.ground_friction denominator", c.Player.GroundFriction.Den},
		{"player.air_damping denominator", c.Player.AirDamping.Den},
		{"camera.target_ratio denominator", c.Camera.TargetRatio.Den},
		{"input.hold_ticks", c.Input.HoldTicks},
		{"timing.death_step_ticks", c.Timing.DeathStepTicks},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.val)
		}
	}
	if c.Camera.Smoothing < 0 {
		return fmt.Errorf("camera.smoothing must not be negative, got %d", c.Camera.Smoothing)
	}
	if c.Player.AttackHold < 0 {
		return fmt.Errorf("player.attack_hold must not be negative, got %d", c.Player.AttackHold)
	}
	return nil
}
