package breakout

import "github.com/vovakirdan/brickfall/internal/core"

// Collision is the side of a collider the ball touched.
type Collision int

const (
	CollisionLeft Collision = iota
	CollisionRight
	CollisionTop
	CollisionBottom
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// MovePaddle advances the paddle horizontally and clamps it into [left, right].
func MovePaddle(t *Transform, dir, speed, dt, left, right float64) {
	t.Position.X = core.ClampF(t.Position.X+dir*speed*dt, left, right)
}

// MoveBall advances the ball by v*dt. The result is not clamped.
func MoveBall(t *Transform, v Velocity, dt float64) {
	t.Position.X += v.X * dt
	t.Position.Y += v.Y * dt
}

// BallCollision tests the ball against a box and classifies the contact side
// from the offset between the ball center and the closest box point. The
// axis with the larger offset wins; equal offsets count as vertical.
func BallCollision(ball core.BoundingCircle, box core.AABB) (Collision, bool) {
	if !ball.Intersects(box) {
		return 0, false
	}

	closest := box.ClosestPoint(ball.Center)
	offset := ball.Center.Sub(closest)

	if abs(offset.X) > abs(offset.Y) {
		if offset.X < 0 {
			return CollisionLeft, true
		}
		return CollisionRight, true
	}
	if offset.Y > 0 {
		return CollisionTop, true
	}
	return CollisionBottom, true
}

// Reflect flips the velocity component facing into the touched side.
// A ball already moving away from the side is left alone.
func Reflect(v Velocity, side Collision) Velocity {
	switch side {
	case CollisionLeft:
		if v.X > 0 {
			v.X = -v.X
		}
	case CollisionRight:
		if v.X < 0 {
			v.X = -v.X
		}
	case CollisionTop:
		if v.Y < 0 {
			v.Y = -v.Y
		}
	case CollisionBottom:
		if v.Y > 0 {
			v.Y = -v.Y
		}
	}
	return v
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
