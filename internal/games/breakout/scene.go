package breakout

import (
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/levels"
)

// WallKind is the placement family of a wall piece.
type WallKind uint8

const (
	WallLeft WallKind = iota
	WallRight
	WallTop
	WallCorner
)

// CornerLocation selects which top corner a corner piece fills.
type CornerLocation uint8

const (
	CornerTopLeft CornerLocation = iota
	CornerTopRight
)

// WallLocation is a closed set: Left, Right, Top, or Corner(TopLeft|TopRight).
// Corner is only meaningful when Kind is WallCorner.
type WallLocation struct {
	Kind   WallKind
	Corner CornerLocation
}

var (
	LeftWall           = WallLocation{Kind: WallLeft}
	RightWall          = WallLocation{Kind: WallRight}
	TopWall            = WallLocation{Kind: WallTop}
	TopLeftCornerWall  = WallLocation{Kind: WallCorner, Corner: CornerTopLeft}
	TopRightCornerWall = WallLocation{Kind: WallCorner, Corner: CornerTopRight}
)

// AllWalls lists the five pieces that enclose the field, in spawn order.
var AllWalls = []WallLocation{LeftWall, RightWall, TopWall, TopLeftCornerWall, TopRightCornerWall}

func (c CornerLocation) position() core.Vec2 {
	switch c {
	case CornerTopRight:
		return core.V(FieldRight+halfWallTile, ScreenTop-halfWallTile)
	default:
		return core.V(ScreenLeft+halfWallTile, ScreenTop-halfWallTile)
	}
}

func (c CornerLocation) flipX() bool {
	return c == CornerTopRight
}

// Position returns the center of the wall piece.
func (w WallLocation) Position() core.Vec2 {
	switch w.Kind {
	case WallLeft:
		return core.V(ScreenLeft+halfWallTile, wallCenterY)
	case WallRight:
		return core.V(FieldRight+halfWallTile, wallCenterY)
	case WallTop:
		return core.V(PlayAreaCenter, ScreenTop-halfWallTile)
	case WallCorner:
		return w.Corner.position()
	}
	panic("breakout: unknown wall kind")
}

// Size returns the full width and height of the wall piece.
func (w WallLocation) Size() core.Vec2 {
	switch w.Kind {
	case WallLeft, WallRight:
		return core.V(WallTileSize, WallLengthVertical)
	case WallTop:
		return core.V(WallLengthHorizontal, WallTileSize)
	case WallCorner:
		return core.V(WallTileSize, WallTileSize)
	}
	panic("breakout: unknown wall kind")
}

// FlipX reports whether the piece is drawn mirrored.
func (w WallLocation) FlipX() bool {
	switch w.Kind {
	case WallLeft, WallTop:
		return false
	case WallRight:
		return true
	case WallCorner:
		return w.Corner.flipX()
	}
	panic("breakout: unknown wall kind")
}

// Rotation returns the draw rotation in radians.
func (w WallLocation) Rotation() float64 {
	switch w.Kind {
	case WallTop:
		return Radian90
	case WallLeft, WallRight, WallCorner:
		return 0
	}
	panic("breakout: unknown wall kind")
}

func (w WallLocation) String() string {
	switch w.Kind {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallCorner:
		if w.Corner == CornerTopRight {
			return "corner-top-right"
		}
		return "corner-top-left"
	}
	return "unknown"
}

// BrickPosition returns the center of the brick at tile (col, row).
func BrickPosition(col, row int) core.Vec2 {
	return core.V(
		BrickSpawnLocation.X+float64(col)*BrickSize.X,
		BrickSpawnLocation.Y-float64(row)*BrickSize.Y,
	)
}

// Setup populates an empty world: walls, one brick per non-empty tile,
// the paddle and the ball. Tiles outside the 13x18 field are ignored.
func Setup(w *World, level levels.Level, physics config.BreakoutPhysics) {
	for _, loc := range AllWalls {
		w.SpawnWall(loc)
	}

	for row := range min(level.Rows, BrickRows) {
		for col := range min(level.Columns, BrickColumns) {
			variant, ok := VariantFromTile(level.At(col, row))
			if !ok {
				continue
			}
			w.SpawnBrick(variant, BrickPosition(col, row))
		}
	}

	w.SpawnPaddle(PaddleStartPosition, PaddleSize)
	w.SpawnBall(BallStartPosition, physics.BallSize, NewVelocity(physics.BallSpeed))
}
