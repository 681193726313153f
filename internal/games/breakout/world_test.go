package breakout

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/levels"
)

func newTestWorld() *World {
	return NewWorld(DefaultParams(100))
}

func noKeys() core.InputFrame {
	return core.NewInputFrame()
}

func TestResolveApproachFromLeft(t *testing.T) {
	w := newTestWorld()
	// Collider centered at (10,0) with half-extents (5,50)
	w.SpawnPaddle(core.V(10, 0), core.V(10, 100))
	w.SpawnBall(core.V(0, 0), 10, Velocity{100, 100})

	report := w.ResolveCollisions()

	if len(report.Contacts) != 1 {
		t.Fatalf("ResolveCollisions() contacts = %d, expected 1", len(report.Contacts))
	}
	if report.Contacts[0].Side != CollisionLeft {
		t.Errorf("side = %v, expected left", report.Contacts[0].Side)
	}
	if report.Contacts[0].Kind != KindPaddle {
		t.Errorf("kind = %v, expected paddle", report.Contacts[0].Kind)
	}
	_, v, _ := w.Ball()
	if *v != (Velocity{-100, 100}) {
		t.Errorf("velocity = %v, expected (-100, 100)", *v)
	}
	if w.CollisionEvents().Len() != 1 {
		t.Errorf("events = %d, expected 1", w.CollisionEvents().Len())
	}
}

func TestTickRemovesBrick(t *testing.T) {
	w := newTestWorld()
	brick := w.SpawnBrick(BrickNormal, core.V(20, 20))
	w.SpawnPaddle(PaddleStartPosition, PaddleSize)
	w.SpawnBall(core.V(20, 23), 4, Velocity{0, 0})

	if !w.HasCollider(brick) {
		t.Fatal("brick should carry a collider")
	}

	report := w.Tick(noKeys(), config.DefaultKeybindings(), 1.0/60)

	if report.BricksDestroyed != 1 {
		t.Errorf("BricksDestroyed = %d, expected 1", report.BricksDestroyed)
	}
	if w.CollisionEvents().Len() != 1 {
		t.Errorf("events = %d, expected 1", w.CollisionEvents().Len())
	}
	if w.Alive(brick) {
		t.Error("brick still alive after tick")
	}
	for _, id := range w.Colliders() {
		if id == brick {
			t.Error("brick still in the collider set")
		}
	}
	if w.BrickCount() != 0 {
		t.Errorf("BrickCount() = %d, expected 0", w.BrickCount())
	}

	// The next tick starts with a fresh event buffer and finds nothing to hit.
	w.Tick(noKeys(), config.DefaultKeybindings(), 1.0/60)
	if w.CollisionEvents().Len() != 0 {
		t.Errorf("events on next tick = %d, expected 0", w.CollisionEvents().Len())
	}
}

func TestQueuedBrickNotHitTwice(t *testing.T) {
	w := newTestWorld()
	w.SpawnBrick(BrickMultiHit, core.V(20, 20))
	w.SpawnBall(core.V(20, 20), 4, Velocity{10, 10})

	first := w.ResolveCollisions()
	second := w.ResolveCollisions()

	if first.BricksDestroyed != 1 {
		t.Errorf("first pass BricksDestroyed = %d, expected 1", first.BricksDestroyed)
	}
	if len(second.Contacts) != 0 {
		t.Errorf("second pass contacts = %d, expected 0", len(second.Contacts))
	}
	if n := w.FlushRemovals(); n != 1 {
		t.Errorf("FlushRemovals() = %d, expected 1", n)
	}
}

func TestTickCornerDoubleContact(t *testing.T) {
	w := newTestWorld()
	Setup(w, levels.Level{ID: "empty"}, config.DefaultBreakoutConfig().Physics)
	w.SpawnBall(core.V(FieldLeft+1.5, FieldTop-1.5), 4, Velocity{-60, 60})

	w.Tick(noKeys(), config.DefaultKeybindings(), 0)

	if w.CollisionEvents().Len() != 2 {
		t.Errorf("events = %d, expected 2", w.CollisionEvents().Len())
	}
	_, v, _ := w.Ball()
	if *v != (Velocity{60, -60}) {
		t.Errorf("velocity = %v, expected (60, -60)", *v)
	}
}

func TestTickResolvesAfterIntegration(t *testing.T) {
	w := newTestWorld()
	w.SpawnWall(LeftWall)
	w.SpawnPaddle(PaddleStartPosition, PaddleSize)
	// Five units from the wall face: clear before moving, touching after.
	w.SpawnBall(core.V(FieldLeft+5, 0), 4, Velocity{-100, 0})

	w.Tick(noKeys(), config.DefaultKeybindings(), 0.04)

	_, v, _ := w.Ball()
	if v.X != 100 {
		t.Errorf("velocity x = %v, expected 100", v.X)
	}
	if w.CollisionEvents().Len() != 1 {
		t.Errorf("events = %d, expected 1", w.CollisionEvents().Len())
	}
}

func TestTickMovesPaddleThenBall(t *testing.T) {
	w := newTestWorld()
	w.SpawnPaddle(PaddleStartPosition, PaddleSize)
	w.SpawnBall(core.V(0, 0), 4, Velocity{30, -60})

	in := core.NewInputFrame()
	in.Press(core.KeyArrowRight)
	w.Tick(in, config.DefaultKeybindings(), 0.1)

	pt, _ := w.Paddle()
	if pt.Position.X != PaddleStartPosition.X+10 {
		t.Errorf("paddle x = %v, expected %v", pt.Position.X, PaddleStartPosition.X+10)
	}
	bt, _, _ := w.Ball()
	if bt.Position != core.V(3, -6) {
		t.Errorf("ball = %v, expected (3, -6)", bt.Position)
	}
}

func TestSpawnSingletonsReplace(t *testing.T) {
	w := newTestWorld()
	oldBall := w.SpawnBall(core.V(0, 0), 4, Velocity{1, 1})
	newBall := w.SpawnBall(core.V(5, 5), 4, Velocity{1, 1})
	oldPaddle := w.SpawnPaddle(core.V(0, 0), PaddleSize)
	newPaddle := w.SpawnPaddle(core.V(1, 0), PaddleSize)

	if w.Alive(oldBall) || !w.Alive(newBall) {
		t.Error("SpawnBall() should replace the previous ball")
	}
	if w.Alive(oldPaddle) || !w.Alive(newPaddle) {
		t.Error("SpawnPaddle() should replace the previous paddle")
	}
	if w.BallID() != newBall || w.PaddleID() != newPaddle {
		t.Error("singleton slots not updated")
	}
	if len(w.Colliders()) != 1 {
		t.Errorf("Colliders() = %d, expected only the paddle", len(w.Colliders()))
	}
	if w.HasCollider(newBall) {
		t.Error("ball must not carry a collider")
	}
}

func TestWorldWithoutBall(t *testing.T) {
	w := newTestWorld()
	w.SpawnWall(TopWall)
	report := w.Tick(noKeys(), config.DefaultKeybindings(), 1)
	if len(report.Contacts) != 0 {
		t.Errorf("contacts = %d, expected 0 without a ball", len(report.Contacts))
	}
}

func TestColliderKindString(t *testing.T) {
	if KindBrick.String() != "brick" || KindWall.String() != "wall" || KindPaddle.String() != "paddle" {
		t.Error("unexpected ColliderKind names")
	}
	if CollisionTop.String() != "top" || Collision(42).String() != "unknown" {
		t.Error("unexpected Collision names")
	}
}
