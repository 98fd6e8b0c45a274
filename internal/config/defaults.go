package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-platformer/internal/fixnum"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in tuning. It matches
// defaults/platformer.yaml and is used when even the embedded file fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Player: PlayerConfig{
			CollisionBox:     Size{W: 6, H: 16},
			SpawnOffset:      Offset{X: 0, Y: -7},
			GroundAccel:      F(fixnum.Ratio(1, 8)),
			GroundFriction:   Fraction{Num: 54, Den: 64},
			AirAccel:         F(fixnum.Ratio(1, 64)),
			AirDamping:       Fraction{Num: 63, Den: 64},
			Gravity:          F(fixnum.Ratio(1, 16)),
			JumpSpeed:        F(fixnum.Ratio(3, 2)),
			LandingSpeed:     F(fixnum.New(1)),
			PoseDeadband:     F(fixnum.Ratio(1, 16)),
			AttackOffset:     16,
			AttackHold:       2,
			IdleFrameTicks:   32,
			RunFrameTicks:    16,
			JumpFrameTicks:   16,
			AttackFrameTicks: 16,
		},
		Boar: BoarConfig{
			CollisionBox:    Size{W: 28, H: 14},
			SpawnOffset:     Offset{X: 0, Y: 1},
			ProximityRadius: 64,
			HitRadius:       15,
			RunSpeed:        F(fixnum.Ratio(1, 4)),
			RunFrames:       7,
			DeathFrames:     4,
			FrameTicks:      4,
			IdleFrameTicks:  16,
			StopDistance:    8,
		},
		Camera: CameraConfig{
			TargetRatio: Fraction{Num: 3, Den: 4},
			Smoothing:   3,
		},
		Input: InputConfig{
			HoldTicks: 30,
		},
		Timing: TimingConfig{
			BannerTicks:    90,
			DeathSteps:     9,
			DeathStepTicks: 7,
			DeathSkipStep:  5,
		},
	}
}
