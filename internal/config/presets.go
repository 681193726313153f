package config

import "fmt"

// speedFactors holds the ball and paddle speed multipliers per preset.
var speedFactors = map[DifficultyPreset][2]float64{
	DifficultyEasy:   {0.75, 1.2},
	DifficultyNormal: {1.0, 1.0},
	DifficultyHard:   {1.4, 1.15},
}

// ParsePreset converts a CLI string to a preset. The empty string means
// "no preset" and is accepted.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := speedFactors[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyBreakoutPreset scales ball and paddle speed for a difficulty preset.
// Speeds are fixed once a run starts, so the preset is applied before spawn.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	f, ok := speedFactors[preset]
	if !ok {
		return
	}
	cfg.Physics.BallSpeed *= f[0]
	cfg.Physics.PaddleSpeed *= f[1]

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.BrickPoints = cfg.Gameplay.BrickPoints / 2
	case DifficultyHard:
		cfg.Gameplay.BrickPoints *= 2
	}
}
