package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/levels"
)

// Transform places an entity. Position is the center; Scale is the full
// width and height of a rectangular body.
type Transform struct {
	Position core.Vec2
	Scale    core.Vec2
}

// AABB returns the collider box derived from the transform.
func (t Transform) AABB() core.AABB {
	return NewAABBFromTransform(t)
}

// NewAABBFromTransform builds a box centered on the position with
// half-extents of scale/2.
func NewAABBFromTransform(t Transform) core.AABB {
	return core.NewAABB(t.Position, t.Scale.Scale(0.5))
}

// Velocity is the ball velocity in world units per second.
type Velocity struct {
	X, Y float64
}

// NewVelocity returns the spawn velocity: speed on both axes, up and to the right.
func NewVelocity(speed float64) Velocity {
	return Velocity{X: speed, Y: speed}
}

// Vec converts the velocity to a vector.
func (v Velocity) Vec() core.Vec2 {
	return core.V(v.X, v.Y)
}

// Speed returns the magnitude.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.X, v.Y)
}

// Collider marks an entity the ball can hit.
type Collider struct{}

// BrickVariant selects how a brick looks. Every variant breaks on first contact.
type BrickVariant uint8

const (
	BrickNormal   BrickVariant = 1
	BrickMultiHit BrickVariant = 2
)

// VariantFromTile maps a level tile to a brick variant; empty tiles report false.
func VariantFromTile(t levels.Tile) (BrickVariant, bool) {
	switch t {
	case levels.TileNormal:
		return BrickNormal, true
	case levels.TileMultiHit:
		return BrickMultiHit, true
	default:
		return 0, false
	}
}

func (v BrickVariant) String() string {
	switch v {
	case BrickNormal:
		return "normal"
	case BrickMultiHit:
		return "multi-hit"
	default:
		return "unknown"
	}
}

// Brick is a destructible collider.
type Brick struct {
	Variant BrickVariant
}

// Wall is a static boundary collider.
type Wall struct {
	Location WallLocation
}

// CollisionEvent signals one ball contact. It carries no payload.
type CollisionEvent struct{}
