// Package config provides YAML-based game configuration, difficulty presets
// and TOML keybinding loading.
package config

// BreakoutConfig contains all configuration for the breakout game.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Audio    AudioConfig      `yaml:"audio"`
}

// BreakoutPhysics defines physics parameters in world units.
type BreakoutPhysics struct {
	BallSpeed   float64 `yaml:"ball_speed"`   // per-axis ball speed, units/second
	PaddleSpeed float64 `yaml:"paddle_speed"` // units/second
	BallSize    float64 `yaml:"ball_size"`    // ball diameter
}

// BreakoutGameplay defines scoring and run-end parameters.
type BreakoutGameplay struct {
	BrickPoints    int     `yaml:"brick_points"`
	BallLostMargin float64 `yaml:"ball_lost_margin"` // distance below the field before the run ends
}

// AudioConfig controls collision sounds.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
