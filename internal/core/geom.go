// Package core provides fundamental types and utilities shared by the game
// and the platform layers. It has no external dependencies (especially no
// Bubble Tea) to keep simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns |v|^2.
func (v Vec2) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// AABB is an axis-aligned bounding box described by its center and half-extents.
type AABB struct {
	Center   Vec2
	HalfSize Vec2
}

// NewAABB creates a box from a center point and half-extents.
func NewAABB(center, halfSize Vec2) AABB {
	return AABB{Center: center, HalfSize: halfSize}
}

// Min returns the bottom-left corner.
func (b AABB) Min() Vec2 {
	return b.Center.Sub(b.HalfSize)
}

// Max returns the top-right corner.
func (b AABB) Max() Vec2 {
	return b.Center.Add(b.HalfSize)
}

// ClosestPoint returns the point on or inside the box nearest to p.
// Each coordinate of p is clamped into [center-half, center+half].
func (b AABB) ClosestPoint(p Vec2) Vec2 {
	lo, hi := b.Min(), b.Max()
	return Vec2{
		X: ClampF(p.X, lo.X, hi.X),
		Y: ClampF(p.Y, lo.Y, hi.Y),
	}
}

// Contains reports whether p lies on or inside the box.
func (b AABB) Contains(p Vec2) bool {
	return b.ClosestPoint(p) == p
}

// BoundingCircle is a circular collision envelope.
type BoundingCircle struct {
	Center Vec2
	Radius float64
}

// NewBoundingCircle creates a circle from its center and radius.
func NewBoundingCircle(center Vec2, radius float64) BoundingCircle {
	return BoundingCircle{Center: center, Radius: radius}
}

// Intersects reports whether the circle touches or overlaps the box.
// Edge contact counts as an intersection; no tolerance is applied.
func (c BoundingCircle) Intersects(b AABB) bool {
	closest := b.ClosestPoint(c.Center)
	return c.Center.Sub(closest).LengthSquared() <= c.Radius*c.Radius
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
