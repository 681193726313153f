package core

// KeyCode identifies a physical key. Names follow the W3C KeyboardEvent.code
// convention ("ArrowLeft", "KeyA", "Space") so binding files stay readable.
type KeyCode string

// Known physical keys.
const (
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyArrowRight KeyCode = "ArrowRight"
	KeyArrowUp    KeyCode = "ArrowUp"
	KeyArrowDown  KeyCode = "ArrowDown"
	KeySpace      KeyCode = "Space"
	KeyEnter      KeyCode = "Enter"
	KeyA          KeyCode = "KeyA"
	KeyD          KeyCode = "KeyD"
	KeyH          KeyCode = "KeyH"
	KeyJ          KeyCode = "KeyJ"
	KeyK          KeyCode = "KeyK"
	KeyL          KeyCode = "KeyL"
	KeyS          KeyCode = "KeyS"
	KeyW          KeyCode = "KeyW"
	KeyComma      KeyCode = "Comma"
	KeyPeriod     KeyCode = "Period"
)

var knownKeys = map[KeyCode]bool{
	KeyArrowLeft: true, KeyArrowRight: true, KeyArrowUp: true, KeyArrowDown: true,
	KeySpace: true, KeyEnter: true,
	KeyA: true, KeyD: true, KeyH: true, KeyJ: true, KeyK: true, KeyL: true, KeyS: true, KeyW: true,
	KeyComma: true, KeyPeriod: true,
}

// IsKnownKey reports whether k names a key the platform can produce.
func IsKnownKey(k KeyCode) bool {
	return knownKeys[k]
}

// KeyInput is a boolean-queryable snapshot of the currently pressed keys.
type KeyInput interface {
	// AnyPressed reports whether at least one of keys is held.
	AnyPressed(keys []KeyCode) bool
}

// Action represents a platform-level intent that is not a bindable game key.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart after the run ends
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick: the set of
// physical keys currently held plus any platform actions triggered.
type InputFrame struct {
	Keys    map[KeyCode]bool
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys:    make(map[KeyCode]bool),
		Actions: make(map[Action]bool),
	}
}

// Press marks a key as held for this frame.
func (f *InputFrame) Press(k KeyCode) {
	if f.Keys == nil {
		f.Keys = make(map[KeyCode]bool)
	}
	f.Keys[k] = true
}

// Pressed returns true if the given key is held.
func (f InputFrame) Pressed(k KeyCode) bool {
	return f.Keys[k]
}

// AnyPressed returns true if any of the keys is held.
func (f InputFrame) AnyPressed(keys []KeyCode) bool {
	for _, k := range keys {
		if f.Keys[k] {
			return true
		}
	}
	return false
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all keys and actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	for a, v := range f.Actions {
		clone.Actions[a] = v
	}
	return clone
}
