package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/brickfall/internal/core"
)

// KeybindingsFile is the default keybindings file name.
const KeybindingsFile = "keybindings.toml"

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrEmptyBinding = errors.New("binding has no keys")
	ErrUnknownField = errors.New("unknown field")
)

// Keybindings maps each game action to the physical keys that trigger it.
// Serve is reserved for launching the ball and is never read by the tick pipeline.
type Keybindings struct {
	MoveLeft  []core.KeyCode `toml:"move_left"`
	MoveRight []core.KeyCode `toml:"move_right"`
	Serve     []core.KeyCode `toml:"serve"`
}

// DefaultKeybindings returns ArrowLeft / ArrowRight / Space.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		MoveLeft:  []core.KeyCode{core.KeyArrowLeft},
		MoveRight: []core.KeyCode{core.KeyArrowRight},
		Serve:     []core.KeyCode{core.KeySpace},
	}
}

// LoadKeybindings reads and validates a TOML keybindings file.
func LoadKeybindings(path string) (Keybindings, error) {
	var kb Keybindings
	md, err := toml.DecodeFile(path, &kb)
	if err != nil {
		return Keybindings{}, fmt.Errorf("failed to read keybindings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Keybindings{}, fmt.Errorf("keybindings %s: %w: %s", path, ErrUnknownField, strings.Join(keys, ", "))
	}
	if err := kb.Validate(); err != nil {
		return Keybindings{}, fmt.Errorf("keybindings %s: %w", path, err)
	}
	return kb, nil
}

// DefaultKeybindingsPath returns ~/.brickfall/keybindings.toml, or empty if
// the home directory is unavailable.
func DefaultKeybindingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickfall", KeybindingsFile)
}

// Validate checks that every action has at least one known key.
func (kb Keybindings) Validate() error {
	actions := []struct {
		name string
		keys []core.KeyCode
	}{
		{"move_left", kb.MoveLeft},
		{"move_right", kb.MoveRight},
		{"serve", kb.Serve},
	}
	for _, a := range actions {
		if len(a.keys) == 0 {
			return fmt.Errorf("%s: %w", a.name, ErrEmptyBinding)
		}
		for _, k := range a.keys {
			if !core.IsKnownKey(k) {
				return fmt.Errorf("%s: %w %q", a.name, ErrUnknownKey, k)
			}
		}
	}
	return nil
}

// Encode writes the bindings as TOML.
func (kb Keybindings) Encode() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(kb); err != nil {
		return "", fmt.Errorf("failed to encode keybindings: %w", err)
	}
	return sb.String(), nil
}
