package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/ecs"
)

// Snapshot contains the complete session state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	State           string
	Score           int
	BricksRemaining int
	BricksDestroyed int
	Collisions      int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	// Brick centers, flattened as (x, y) pairs in spawn order
	BrickData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:           g.state,
		Score:           g.score,
		BricksRemaining: g.world.BrickCount(),
		BricksDestroyed: g.bricksDestroyed,
		Collisions:      g.collisions,
	}

	if pt, ok := g.world.Paddle(); ok {
		snap.PaddleX = pt.Position.X
	}
	if bt, bv, ok := g.world.Ball(); ok {
		snap.BallX, snap.BallY = bt.Position.X, bt.Position.Y
		snap.BallVX, snap.BallVY = bv.X, bv.Y
	}

	snap.BrickData = make([]float64, 0, snap.BricksRemaining*2)
	g.world.EachBrick(func(_ ecs.EntityID, _ Brick, t Transform) {
		snap.BrickData = append(snap.BrickData, t.Position.X, t.Position.Y)
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksDestroyed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collisions)      //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
