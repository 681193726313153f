package breakout

import (
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// PaddleDirection maps held keys to a paddle intent: -1 for left, +1 for
// right, 0 for neither. Left wins when both are held. Serve keys are ignored.
func PaddleDirection(in core.KeyInput, kb config.Keybindings) float64 {
	if in.AnyPressed(kb.MoveLeft) {
		return -1
	}
	if in.AnyPressed(kb.MoveRight) {
		return 1
	}
	return 0
}
