package config

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/fixnum"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts boar aggression for a difficulty preset.
// Normal leaves the loaded tuning untouched.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Boar.ProximityRadius = cfg.Boar.ProximityRadius * 3 / 4
		cfg.Boar.RunSpeed = F(cfg.Boar.RunSpeed.MulInt(3).DivInt(4))
		cfg.Boar.HitRadius = max(cfg.Boar.HitRadius-3, 1)
	case DifficultyHard:
		cfg.Boar.ProximityRadius = cfg.Boar.ProximityRadius * 5 / 4
		cfg.Boar.RunSpeed = F(cfg.Boar.RunSpeed.Add(fixnum.Ratio(1, 8)))
		cfg.Boar.RunFrames += 3
	}
}
