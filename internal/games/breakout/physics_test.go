package breakout

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

func TestBallCollisionSides(t *testing.T) {
	box := core.NewAABB(core.V(0, 0), core.V(10, 4))

	tests := []struct {
		name     string
		center   core.Vec2
		expected Collision
	}{
		{"from the left", core.V(-11, 0), CollisionLeft},
		{"from the right", core.V(11, 1), CollisionRight},
		{"from above", core.V(3, 5), CollisionTop},
		{"from below", core.V(-3, -5), CollisionBottom},
		// Equal offsets fall through to the vertical axis
		{"corner tie above", core.V(11, 5), CollisionTop},
		{"corner tie below", core.V(-11, -5), CollisionBottom},
		// Center inside the box: zero offset counts as bottom
		{"center inside", core.V(1, 1), CollisionBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, hit := BallCollision(core.NewBoundingCircle(tc.center, 2), box)
			if !hit {
				t.Fatalf("BallCollision() hit = false, expected true")
			}
			if side != tc.expected {
				t.Errorf("BallCollision() = %v, expected %v", side, tc.expected)
			}
		})
	}
}

func TestBallCollisionMiss(t *testing.T) {
	box := core.NewAABB(core.V(0, 0), core.V(10, 4))
	if _, hit := BallCollision(core.NewBoundingCircle(core.V(-12.5, 0), 2), box); hit {
		t.Error("BallCollision() hit = true for a separated ball")
	}
	// Edge touching counts
	if _, hit := BallCollision(core.NewBoundingCircle(core.V(-12, 0), 2), box); !hit {
		t.Error("BallCollision() hit = false for an edge-touching ball")
	}
}

func TestReflectGuards(t *testing.T) {
	tests := []struct {
		side     Collision
		in       Velocity
		expected Velocity
	}{
		{CollisionLeft, Velocity{5, 3}, Velocity{-5, 3}},
		{CollisionLeft, Velocity{-5, 3}, Velocity{-5, 3}},
		{CollisionRight, Velocity{-5, 3}, Velocity{5, 3}},
		{CollisionRight, Velocity{5, 3}, Velocity{5, 3}},
		{CollisionTop, Velocity{5, -3}, Velocity{5, 3}},
		{CollisionTop, Velocity{5, 3}, Velocity{5, 3}},
		{CollisionBottom, Velocity{5, 3}, Velocity{5, -3}},
		{CollisionBottom, Velocity{5, -3}, Velocity{5, -3}},
		{CollisionLeft, Velocity{0, 3}, Velocity{0, 3}},
	}

	for _, tc := range tests {
		result := Reflect(tc.in, tc.side)
		if result != tc.expected {
			t.Errorf("Reflect(%v, %v) = %v, expected %v", tc.in, tc.side, result, tc.expected)
		}
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	velocities := []Velocity{
		{60, 60}, {-60, 60}, {0.1, -33.3}, {-1e6, 7}, {123.456, -0.001}, {0, 0},
	}
	sides := []Collision{CollisionLeft, CollisionRight, CollisionTop, CollisionBottom}

	for _, v := range velocities {
		for _, a := range sides {
			single := Reflect(v, a)
			if single.Speed() != v.Speed() {
				t.Errorf("Reflect(%v, %v) speed = %v, expected %v", v, a, single.Speed(), v.Speed())
			}
			for _, b := range sides {
				double := Reflect(single, b)
				if double.Speed() != v.Speed() {
					t.Errorf("Reflect twice (%v, %v, %v) speed = %v, expected %v", v, a, b, double.Speed(), v.Speed())
				}
			}
		}
	}
}

func TestMovePaddleStaysInBounds(t *testing.T) {
	dts := []float64{0, 1.0 / 60, 0.5, 3, 1e9}
	dirs := []float64{-1, 0, 1}
	starts := []float64{PaddleLeftBound, PlayAreaCenter, PaddleRightBound}

	for _, start := range starts {
		for _, dir := range dirs {
			for _, dt := range dts {
				tr := Transform{Position: core.V(start, PaddleStartPosition.Y), Scale: PaddleSize}
				MovePaddle(&tr, dir, 100, dt, PaddleLeftBound, PaddleRightBound)
				x := tr.Position.X
				if x < PaddleLeftBound || x > PaddleRightBound {
					t.Errorf("MovePaddle(start=%v, dir=%v, dt=%v) x = %v, outside [%v, %v]",
						start, dir, dt, x, PaddleLeftBound, PaddleRightBound)
				}
				if tr.Position.Y != PaddleStartPosition.Y {
					t.Errorf("MovePaddle changed y to %v", tr.Position.Y)
				}
			}
		}
	}
}

func TestMovePaddleAtLeftBound(t *testing.T) {
	tr := Transform{Position: core.V(PaddleLeftBound, PaddleStartPosition.Y), Scale: PaddleSize}
	MovePaddle(&tr, -1, 100, 1.0/60, PaddleLeftBound, PaddleRightBound)
	if tr.Position.X != PaddleLeftBound {
		t.Errorf("MovePaddle() x = %v, expected exactly %v", tr.Position.X, PaddleLeftBound)
	}
}

func TestMovePaddle(t *testing.T) {
	tr := Transform{Position: core.V(0, 0)}
	MovePaddle(&tr, 1, 100, 0.1, -50, 50)
	if tr.Position.X != 10 {
		t.Errorf("MovePaddle() x = %v, expected 10", tr.Position.X)
	}
	MovePaddle(&tr, -1, 100, 0.25, -50, 50)
	if tr.Position.X != -15 {
		t.Errorf("MovePaddle() x = %v, expected -15", tr.Position.X)
	}
}

func TestMoveBallUnclamped(t *testing.T) {
	tr := Transform{Position: core.V(30, 70)}
	MoveBall(&tr, Velocity{100, 100}, 1)
	if tr.Position != core.V(130, 170) {
		t.Errorf("MoveBall() = %v, expected (130, 170)", tr.Position)
	}
}

func TestPaddleDirection(t *testing.T) {
	kb := config.Keybindings{
		MoveLeft:  []core.KeyCode{core.KeyArrowLeft, core.KeyA},
		MoveRight: []core.KeyCode{core.KeyArrowRight, core.KeyD},
		Serve:     []core.KeyCode{core.KeySpace},
	}

	tests := []struct {
		name     string
		keys     []core.KeyCode
		expected float64
	}{
		{"none", nil, 0},
		{"left arrow", []core.KeyCode{core.KeyArrowLeft}, -1},
		{"alternate left", []core.KeyCode{core.KeyA}, -1},
		{"right", []core.KeyCode{core.KeyD}, 1},
		{"both held, left wins", []core.KeyCode{core.KeyArrowRight, core.KeyA}, -1},
		{"serve only", []core.KeyCode{core.KeySpace}, 0},
		{"unbound key", []core.KeyCode{core.KeyW}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, k := range tc.keys {
				in.Press(k)
			}
			first := PaddleDirection(in, kb)
			if first != tc.expected {
				t.Errorf("PaddleDirection() = %v, expected %v", first, tc.expected)
			}
			for range 3 {
				if again := PaddleDirection(in, kb); again != first {
					t.Errorf("PaddleDirection() repeated = %v, expected %v", again, first)
				}
			}
		})
	}
}

func TestEvents(t *testing.T) {
	ev := NewEvents[CollisionEvent]()
	ev.Send(CollisionEvent{})
	ev.Send(CollisionEvent{})
	if ev.Len() != 2 || len(ev.Read()) != 2 {
		t.Errorf("Len() = %d, expected 2", ev.Len())
	}
	drained := ev.Drain()
	if len(drained) != 2 {
		t.Errorf("Drain() returned %d events, expected 2", len(drained))
	}
	if ev.Len() != 0 {
		t.Errorf("Len() after Drain = %d, expected 0", ev.Len())
	}
	ev.Send(CollisionEvent{})
	ev.Clear()
	if ev.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", ev.Len())
	}
}
