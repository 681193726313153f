package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfall/internal/core"
)

// HoldTicks is how long a key counts as held after its last press or
// repeat event. Terminals never report key releases.
const HoldTicks = 8

// keyNames maps Bubble Tea key strings to physical key codes.
var keyNames = map[string]core.KeyCode{
	"left":  core.KeyArrowLeft,
	"right": core.KeyArrowRight,
	"up":    core.KeyArrowUp,
	"down":  core.KeyArrowDown,
	" ":     core.KeySpace,
	"enter": core.KeyEnter,
	"a":     core.KeyA,
	"d":     core.KeyD,
	"h":     core.KeyH,
	"j":     core.KeyJ,
	"k":     core.KeyK,
	"l":     core.KeyL,
	"s":     core.KeyS,
	"w":     core.KeyW,
	",":     core.KeyComma,
	".":     core.KeyPeriod,
}

// KeyMapper translates Bubble Tea key messages to key codes and platform
// actions. Letter keys are matched case-insensitively.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the platform action for msg, if any.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch strings.ToLower(msg.String()) {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapKeyCode returns the physical key for msg.
func (km *KeyMapper) MapKeyCode(msg tea.KeyMsg) (core.KeyCode, bool) {
	s := msg.String()
	if code, ok := keyNames[s]; ok {
		return code, true
	}
	code, ok := keyNames[strings.ToLower(s)]
	return code, ok
}

// KeyHold approximates held keys from press and repeat events.
type KeyHold struct {
	ticks     int
	remaining map[core.KeyCode]int
}

// NewKeyHold creates a hold table. holdTicks <= 0 uses HoldTicks.
func NewKeyHold(holdTicks int) *KeyHold {
	if holdTicks <= 0 {
		holdTicks = HoldTicks
	}
	return &KeyHold{ticks: holdTicks, remaining: make(map[core.KeyCode]int)}
}

// Press refreshes k.
func (h *KeyHold) Press(k core.KeyCode) {
	h.remaining[k] = h.ticks
}

// Fill marks every held key in f.
func (h *KeyHold) Fill(f *core.InputFrame) {
	for k, n := range h.remaining {
		if n > 0 {
			f.Press(k)
		}
	}
}

// Advance ages every key by one tick and forgets expired ones.
func (h *KeyHold) Advance() {
	for k, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, k)
			continue
		}
		h.remaining[k] = n - 1
	}
}

// Held reports whether k is still considered pressed.
func (h *KeyHold) Held(k core.KeyCode) bool {
	return h.remaining[k] > 0
}

// Release forgets every key.
func (h *KeyHold) Release() {
	clear(h.remaining)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
