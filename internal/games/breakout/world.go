package breakout

import (
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/ecs"
)

// ColliderKind tells the resolver what it hit.
type ColliderKind uint8

const (
	KindWall ColliderKind = iota
	KindBrick
	KindPaddle
)

func (k ColliderKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Contact records one resolved ball contact.
type Contact struct {
	Entity ecs.EntityID
	Kind   ColliderKind
	Side   Collision
}

// ResolveReport summarizes a resolution pass.
type ResolveReport struct {
	Contacts        []Contact
	BricksDestroyed int
}

// Params are the per-run motion constants.
type Params struct {
	PaddleSpeed      float64
	PaddleLeftBound  float64
	PaddleRightBound float64
}

// DefaultParams returns the paddle constants for the standard field.
func DefaultParams(paddleSpeed float64) Params {
	return Params{
		PaddleSpeed:      paddleSpeed,
		PaddleLeftBound:  PaddleLeftBound,
		PaddleRightBound: PaddleRightBound,
	}
}

// World owns every simulated entity. The ball and paddle live in singleton
// slots; walls, bricks and the paddle carry a Collider.
type World struct {
	entities *ecs.Entities

	transforms *ecs.Store[Transform]
	velocities *ecs.Store[Velocity]
	colliders  *ecs.Store[Collider]
	bricks     *ecs.Store[Brick]
	walls      *ecs.Store[Wall]

	ball, paddle       ecs.EntityID
	hasBall, hasPaddle bool

	collisions *Events[CollisionEvent]
	params     Params
}

// NewWorld creates an empty world.
func NewWorld(params Params) *World {
	w := &World{
		entities:   ecs.NewEntities(),
		transforms: ecs.NewStore[Transform](),
		velocities: ecs.NewStore[Velocity](),
		colliders:  ecs.NewStore[Collider](),
		bricks:     ecs.NewStore[Brick](),
		walls:      ecs.NewStore[Wall](),
		collisions: NewEvents[CollisionEvent](),
		params:     params,
	}
	w.entities.Track(w.transforms)
	w.entities.Track(w.velocities)
	w.entities.Track(w.colliders)
	w.entities.Track(w.bricks)
	w.entities.Track(w.walls)
	return w
}

// Params returns the motion constants.
func (w *World) Params() Params {
	return w.params
}

// SpawnWall adds a wall piece with a collider.
func (w *World) SpawnWall(loc WallLocation) ecs.EntityID {
	id := w.entities.Create()
	w.transforms.Set(id, Transform{Position: loc.Position(), Scale: loc.Size()})
	w.walls.Set(id, Wall{Location: loc})
	w.colliders.Set(id, Collider{})
	return id
}

// SpawnBrick adds a BrickSize brick centered at pos.
func (w *World) SpawnBrick(variant BrickVariant, pos core.Vec2) ecs.EntityID {
	id := w.entities.Create()
	w.transforms.Set(id, Transform{Position: pos, Scale: BrickSize})
	w.bricks.Set(id, Brick{Variant: variant})
	w.colliders.Set(id, Collider{})
	return id
}

// SpawnPaddle places the paddle, replacing any existing one.
func (w *World) SpawnPaddle(pos, size core.Vec2) ecs.EntityID {
	if w.hasPaddle {
		w.entities.Destroy(w.paddle)
	}
	id := w.entities.Create()
	w.transforms.Set(id, Transform{Position: pos, Scale: size})
	w.colliders.Set(id, Collider{})
	w.paddle, w.hasPaddle = id, true
	return id
}

// SpawnBall places the ball, replacing any existing one. The ball has no collider.
func (w *World) SpawnBall(pos core.Vec2, size float64, v Velocity) ecs.EntityID {
	if w.hasBall {
		w.entities.Destroy(w.ball)
	}
	id := w.entities.Create()
	w.transforms.Set(id, Transform{Position: pos, Scale: core.V(size, size)})
	w.velocities.Set(id, v)
	w.ball, w.hasBall = id, true
	return id
}

// Ball returns the ball transform and velocity.
func (w *World) Ball() (*Transform, *Velocity, bool) {
	if !w.hasBall {
		return nil, nil, false
	}
	t, ok := w.transforms.Get(w.ball)
	if !ok {
		return nil, nil, false
	}
	v, ok := w.velocities.Get(w.ball)
	if !ok {
		return nil, nil, false
	}
	return t, v, true
}

// BallCircle returns the ball's collision circle. Its radius is half the ball scale.
func (w *World) BallCircle() (core.BoundingCircle, bool) {
	t, _, ok := w.Ball()
	if !ok {
		return core.BoundingCircle{}, false
	}
	return core.NewBoundingCircle(t.Position, t.Scale.X/2), true
}

// Paddle returns the paddle transform.
func (w *World) Paddle() (*Transform, bool) {
	if !w.hasPaddle {
		return nil, false
	}
	return w.transforms.Get(w.paddle)
}

// BallID and PaddleID return the singleton handles.
func (w *World) BallID() ecs.EntityID   { return w.ball }
func (w *World) PaddleID() ecs.EntityID { return w.paddle }

// Alive reports whether id still exists.
func (w *World) Alive(id ecs.EntityID) bool {
	return w.entities.Alive(id)
}

// Transform returns the transform of any entity.
func (w *World) Transform(id ecs.EntityID) (*Transform, bool) {
	return w.transforms.Get(id)
}

// HasCollider reports whether id takes part in collision queries.
func (w *World) HasCollider(id ecs.EntityID) bool {
	return w.colliders.Has(id)
}

// Colliders returns every collider id in spawn order.
func (w *World) Colliders() []ecs.EntityID {
	return w.colliders.IDs()
}

// BrickCount returns the number of bricks left.
func (w *World) BrickCount() int {
	return w.bricks.Len()
}

// EachBrick visits bricks in spawn order.
func (w *World) EachBrick(fn func(id ecs.EntityID, b Brick, t Transform)) {
	w.bricks.Each(func(id ecs.EntityID, b *Brick) {
		if t, ok := w.transforms.Get(id); ok {
			fn(id, *b, *t)
		}
	})
}

// EachWall visits walls in spawn order.
func (w *World) EachWall(fn func(id ecs.EntityID, wall Wall, t Transform)) {
	w.walls.Each(func(id ecs.EntityID, wl *Wall) {
		if t, ok := w.transforms.Get(id); ok {
			fn(id, *wl, *t)
		}
	})
}

// CollisionEvents returns the events emitted by the last tick.
func (w *World) CollisionEvents() *Events[CollisionEvent] {
	return w.collisions
}

// Tick runs one fixed step: input mapper, paddle integrator, ball integrator,
// collision resolver, then removal of destroyed bricks.
func (w *World) Tick(in core.KeyInput, kb config.Keybindings, dt float64) ResolveReport {
	w.collisions.Clear()

	dir := PaddleDirection(in, kb)
	if pt, ok := w.Paddle(); ok {
		MovePaddle(pt, dir, w.params.PaddleSpeed, dt, w.params.PaddleLeftBound, w.params.PaddleRightBound)
	}

	if bt, bv, ok := w.Ball(); ok {
		MoveBall(bt, *bv, dt)
	}

	report := w.ResolveCollisions()
	w.FlushRemovals()
	return report
}

// ResolveCollisions tests the ball against every collider at its current
// position. Each contact emits one CollisionEvent, queues a brick for
// removal, and reflects the velocity. Contacts accumulate within the pass.
func (w *World) ResolveCollisions() ResolveReport {
	var report ResolveReport

	circle, ok := w.BallCircle()
	if !ok {
		return report
	}
	_, vel, _ := w.Ball()

	// Snapshot so queued removals cannot disturb iteration.
	for _, id := range w.colliders.IDs() {
		if w.entities.Pending(id) {
			continue
		}
		t, ok := w.transforms.Get(id)
		if !ok {
			continue
		}

		side, hit := BallCollision(circle, t.AABB())
		if !hit {
			continue
		}

		w.collisions.Send(CollisionEvent{})

		kind := w.kindOf(id)
		if kind == KindBrick && w.entities.MarkForDestruction(id) {
			report.BricksDestroyed++
		}

		*vel = Reflect(*vel, side)
		report.Contacts = append(report.Contacts, Contact{Entity: id, Kind: kind, Side: side})
	}

	return report
}

// FlushRemovals destroys every entity queued during resolution.
func (w *World) FlushRemovals() int {
	return w.entities.Flush()
}

func (w *World) kindOf(id ecs.EntityID) ColliderKind {
	switch {
	case w.bricks.Has(id):
		return KindBrick
	case w.hasPaddle && id == w.paddle:
		return KindPaddle
	default:
		return KindWall
	}
}
