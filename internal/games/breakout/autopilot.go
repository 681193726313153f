package breakout

import "github.com/vovakirdan/brickfall/internal/core"

// Autopilot steers the paddle under the ball. It serves immediately and
// presses the first bound key toward the ball's x position.
type Autopilot struct {
	// Deadzone is how far the ball may be from the paddle center before moving.
	Deadzone float64
}

// NewAutopilot returns an autopilot with a deadzone of a quarter paddle.
func NewAutopilot() *Autopilot {
	return &Autopilot{Deadzone: PaddleSize.X / 4}
}

// Next builds the input frame for the coming tick.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	kb := g.Keys()

	if g.Phase() == StateServe && len(kb.Serve) > 0 {
		in.Press(kb.Serve[0])
		return in
	}

	bt, _, ok := g.World().Ball()
	pt, okP := g.World().Paddle()
	if !ok || !okP {
		return in
	}

	dx := bt.Position.X - pt.Position.X
	switch {
	case dx < -a.Deadzone && len(kb.MoveLeft) > 0:
		in.Press(kb.MoveLeft[0])
	case dx > a.Deadzone && len(kb.MoveRight) > 0:
		in.Press(kb.MoveRight[0])
	}
	return in
}
