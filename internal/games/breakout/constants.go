// Package breakout implements a fixed-timestep brick breaker: a paddle
// deflects a ball toward destructible bricks enclosed by static walls.
//
// World holds the simulation state and runs the per-tick pipeline.
// Game wraps a World with serve, scoring and run-end rules for the platform.
package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Play field layout in world units. The origin is the screen center, y grows
// upward, and the screen is 160x144.
const (
	ScreenWidth  = 160.0
	ScreenHeight = 144.0
	ScreenLeft   = -ScreenWidth / 2
	ScreenRight  = ScreenWidth / 2
	ScreenTop    = ScreenHeight / 2
	ScreenBottom = -ScreenHeight / 2

	WallTileSize  = 8.0
	halfWallTile  = WallTileSize / 2
	wallTilesVert = 17
	wallTilesHorz = 13

	WallLengthVertical   = wallTilesVert * WallTileSize
	WallLengthHorizontal = wallTilesHorz * WallTileSize

	wallLengthWithCorners = WallLengthHorizontal + WallTileSize*2
	wallCenterY           = -WallTileSize + halfWallTile

	// PlayAreaCenter is the x coordinate halfway between the side walls.
	PlayAreaCenter = ScreenLeft + wallLengthWithCorners/2

	// Inner edges of the walls.
	FieldLeft   = ScreenLeft + WallTileSize
	FieldRight  = ScreenLeft + wallLengthWithCorners - WallTileSize
	FieldTop    = ScreenTop - WallTileSize
	FieldBottom = ScreenBottom

	BrickColumns = 13
	BrickRows    = 18

	paddleBottomPadding = 8.0

	// Radian90 is the rotation applied to the top wall so its tiles run horizontally.
	Radian90 = -math.Pi / 2
)

var (
	BrickSize          = core.V(8, 4)
	BrickSpawnLocation = core.V(FieldLeft+BrickSize.X/2, FieldTop-BrickSize.Y/2)

	PaddleSize          = core.V(26, 5)
	PaddleStartPosition = core.V(PlayAreaCenter, ScreenBottom+paddleBottomPadding+PaddleSize.Y/2)

	// Paddle travel keeps the whole paddle between the side walls.
	PaddleLeftBound  = FieldLeft + PaddleSize.X/2
	PaddleRightBound = FieldRight - PaddleSize.X/2

	BallStartPosition = core.V(PlayAreaCenter, -40)
)
