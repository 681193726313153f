package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the breakout config file name inside a configs directory.
const ConfigFile = "breakout.yaml"

// SkippedFile is a config file on the search path that exists but could
// not be used.
type SkippedFile struct {
	Path string
	Err  error
}

// LoadBreakout loads breakout configuration.
// Search order: customPath -> ~/.brickfall/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Only a bad customPath is an error. Fields missing from a file keep their
// default values.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, _, err := LoadBreakoutReport(customPath)
	return cfg, err
}

// LoadBreakoutReport is LoadBreakout that also returns the search-path files
// it had to skip, so the caller can warn about them. Missing files are not
// reported.
func LoadBreakoutReport(customPath string) (BreakoutConfig, []SkippedFile, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBreakoutConfig(), nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil, nil
	}

	var skipped []SkippedFile
	candidates := []string{filepath.Join("configs", ConfigFile)}
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		loaded, err := tryLoad(path)
		if err == nil {
			return loaded, skipped, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), skipped, nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), skipped, nil
}

func tryLoad(path string) (BreakoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, err
	}
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized replaces non-positive physics values with defaults and clamps
// the audio volume into [0, 1].
func (c BreakoutConfig) normalized() BreakoutConfig {
	def := DefaultBreakoutConfig()
	if c.Physics.BallSpeed <= 0 {
		c.Physics.BallSpeed = def.Physics.BallSpeed
	}
	if c.Physics.PaddleSpeed <= 0 {
		c.Physics.PaddleSpeed = def.Physics.PaddleSpeed
	}
	if c.Physics.BallSize <= 0 {
		c.Physics.BallSize = def.Physics.BallSize
	}
	if c.Gameplay.BrickPoints < 0 {
		c.Gameplay.BrickPoints = 0
	}
	if c.Gameplay.BallLostMargin < 0 {
		c.Gameplay.BallLostMargin = 0
	}
	c.Audio.Volume = clampF(c.Audio.Volume, 0, 1)
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickfall", "configs", filename)
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
