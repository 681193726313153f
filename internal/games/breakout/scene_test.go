package breakout

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/ecs"
	"github.com/vovakirdan/brickfall/internal/levels"
)

func TestWallLocations(t *testing.T) {
	tests := []struct {
		loc      WallLocation
		pos      core.Vec2
		size     core.Vec2
		flipX    bool
		rotation float64
		glyph    rune
	}{
		{LeftWall, core.V(-76, -4), core.V(8, 136), false, 0, WallVertChar},
		{RightWall, core.V(36, -4), core.V(8, 136), true, 0, WallVertChar},
		{TopWall, core.V(-20, 68), core.V(104, 8), false, Radian90, WallHorizChar},
		{TopLeftCornerWall, core.V(-76, 68), core.V(8, 8), false, 0, CornerLeftChar},
		{TopRightCornerWall, core.V(36, 68), core.V(8, 8), true, 0, CornerRightChar},
	}

	for _, tc := range tests {
		t.Run(tc.loc.String(), func(t *testing.T) {
			if got := tc.loc.Position(); got != tc.pos {
				t.Errorf("Position() = %v, expected %v", got, tc.pos)
			}
			if got := tc.loc.Size(); got != tc.size {
				t.Errorf("Size() = %v, expected %v", got, tc.size)
			}
			if got := tc.loc.FlipX(); got != tc.flipX {
				t.Errorf("FlipX() = %v, expected %v", got, tc.flipX)
			}
			if got := tc.loc.Rotation(); got != tc.rotation {
				t.Errorf("Rotation() = %v, expected %v", got, tc.rotation)
			}
			if got := WallGlyph(tc.loc); got != tc.glyph {
				t.Errorf("WallGlyph() = %q, expected %q", got, tc.glyph)
			}
		})
	}
}

func TestFieldConstants(t *testing.T) {
	checks := []struct {
		name          string
		got, expected float64
	}{
		{"PlayAreaCenter", PlayAreaCenter, -20},
		{"FieldLeft", FieldLeft, -72},
		{"FieldRight", FieldRight, 32},
		{"FieldTop", FieldTop, 64},
		{"PaddleLeftBound", PaddleLeftBound, -59},
		{"PaddleRightBound", PaddleRightBound, 19},
		{"PaddleStart.Y", PaddleStartPosition.Y, -61.5},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
		}
	}
	if BrickSpawnLocation != core.V(-68, 62) {
		t.Errorf("BrickSpawnLocation = %v, expected (-68, 62)", BrickSpawnLocation)
	}
}

func TestBrickPosition(t *testing.T) {
	tests := []struct {
		col, row int
		expected core.Vec2
	}{
		{0, 0, core.V(-68, 62)},
		{1, 0, core.V(-60, 62)},
		{0, 1, core.V(-68, 58)},
		{12, 17, core.V(28, -6)},
	}
	for _, tc := range tests {
		if got := BrickPosition(tc.col, tc.row); got != tc.expected {
			t.Errorf("BrickPosition(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
		}
	}
}

func TestSetupDebugLevel(t *testing.T) {
	lvl, err := levels.Get("debug")
	if err != nil {
		t.Fatal(err)
	}
	phys := config.DefaultBreakoutConfig().Physics
	w := NewWorld(DefaultParams(phys.PaddleSpeed))
	Setup(w, lvl, phys)

	if w.BrickCount() != lvl.BrickCount() {
		t.Errorf("BrickCount() = %d, expected %d", w.BrickCount(), lvl.BrickCount())
	}
	// walls + bricks + paddle
	if got, want := len(w.Colliders()), len(AllWalls)+lvl.BrickCount()+1; got != want {
		t.Errorf("Colliders() = %d, expected %d", got, want)
	}

	multi := 0
	w.EachBrick(func(_ ecs.EntityID, b Brick, tr Transform) {
		if tr.Scale != BrickSize {
			t.Errorf("brick scale = %v, expected %v", tr.Scale, BrickSize)
		}
		if b.Variant == BrickMultiHit {
			multi++
		}
	})
	if multi != 44 {
		t.Errorf("multi-hit bricks = %d, expected 44", multi)
	}

	pt, ok := w.Paddle()
	if !ok || pt.Position != PaddleStartPosition || pt.Scale != PaddleSize {
		t.Errorf("paddle = %+v, expected at %v size %v", pt, PaddleStartPosition, PaddleSize)
	}
	bt, bv, ok := w.Ball()
	if !ok || bt.Position != BallStartPosition {
		t.Errorf("ball = %+v, expected at %v", bt, BallStartPosition)
	}
	if *bv != NewVelocity(phys.BallSpeed) {
		t.Errorf("ball velocity = %v, expected %v", *bv, NewVelocity(phys.BallSpeed))
	}
}

func TestVariantFromTile(t *testing.T) {
	if _, ok := VariantFromTile(levels.TileEmpty); ok {
		t.Error("empty tile should not spawn a brick")
	}
	if v, ok := VariantFromTile(levels.TileNormal); !ok || v != BrickNormal {
		t.Errorf("VariantFromTile(normal) = %v, %v", v, ok)
	}
	if v, ok := VariantFromTile(levels.TileMultiHit); !ok || v != BrickMultiHit {
		t.Errorf("VariantFromTile(multi) = %v, %v", v, ok)
	}
}
