package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded breakout configuration.
// It matches defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:   60,
			PaddleSpeed: 100,
			BallSize:    4,
		},
		Gameplay: BreakoutGameplay{
			BrickPoints:    10,
			BallLostMargin: 8,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
