package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/ecs"
)

// Visual characters for rendering
const (
	PaddleChar        = '='
	BallChar          = '●'
	BrickChar         = '█'
	MultiHitBrickChar = '▓'
	WallVertChar      = '│'
	WallHorizChar     = '─'
	CornerLeftChar    = '┌'
	CornerRightChar   = '┐'
)

// hudRows is the number of rows above the field.
const hudRows = 1

// World bounds drawn on screen: the walls plus everything down to the screen bottom.
const (
	viewLeft   = ScreenLeft
	viewRight  = FieldRight + WallTileSize
	viewTop    = ScreenTop
	viewBottom = ScreenBottom
)

// brickColors cycles by row so rows are easy to tell apart.
var brickColors = []core.Color{core.ColorShade0, core.ColorShade1, core.ColorShade2, core.ColorShade3}

// viewport maps world coordinates to screen cells with a separate scale per axis.
type viewport struct {
	w, h int
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - viewLeft) / (viewRight - viewLeft) * float64(v.w)))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor((viewTop-y)/(viewTop-viewBottom)*float64(v.h-hudRows)))
}

// rect returns the cell rectangle covered by a box, at least one cell in size.
func (v viewport) rect(b core.AABB) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, x1 := v.col(lo.X), v.col(hi.X)
	y0, y1 := v.row(hi.Y), v.row(lo.Y)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// WallGlyph picks the glyph for a wall piece from its flip and rotation.
func WallGlyph(loc WallLocation) rune {
	switch {
	case loc.Kind == WallCorner && loc.FlipX():
		return CornerRightChar
	case loc.Kind == WallCorner:
		return CornerLeftChar
	case loc.Rotation() != 0:
		return WallHorizChar
	default:
		return WallVertChar
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	vp := viewport{w: dst.Width(), h: dst.Height()}

	g.renderHUD(dst)
	g.renderWalls(dst, vp)
	g.renderBricks(dst, vp)
	g.renderPaddle(dst, vp)
	g.renderBall(dst, vp)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, g.opts.Level.Title)

	bricksText := fmt.Sprintf("Bricks: %d/%d", g.world.BrickCount(), g.bricksTotal)
	dst.DrawText(dst.Width()-len(bricksText)-1, 0, bricksText)
}

func (g *Game) renderWalls(dst *core.Screen, vp viewport) {
	g.world.EachWall(func(_ ecs.EntityID, w Wall, t Transform) {
		fillRect(dst, vp.rect(t.AABB()), WallGlyph(w.Location), core.ColorGray)
	})
}

func (g *Game) renderBricks(dst *core.Screen, vp viewport) {
	g.world.EachBrick(func(_ ecs.EntityID, b Brick, t Transform) {
		glyph, color := BrickChar, core.ColorShade0
		row := int(math.Round((BrickSpawnLocation.Y - t.Position.Y) / BrickSize.Y))
		if row >= 0 {
			color = brickColors[row%len(brickColors)]
		}
		if b.Variant == BrickMultiHit {
			glyph, color = MultiHitBrickChar, core.ColorYellow
		}
		fillRect(dst, vp.rect(t.AABB()), glyph, color)
	})
}

func (g *Game) renderPaddle(dst *core.Screen, vp viewport) {
	t, ok := g.world.Paddle()
	if !ok {
		return
	}
	r := vp.rect(t.AABB())
	// Always one row tall.
	fillRect(dst, core.NewRect(r.X, r.Y, r.W, 1), PaddleChar, core.ColorBrightWhite)
}

func (g *Game) renderBall(dst *core.Screen, vp viewport) {
	circle, ok := g.world.BallCircle()
	if !ok {
		return
	}
	dst.SetColored(vp.col(circle.Center.X), vp.row(circle.Center.Y), BallChar, core.ColorBrightCyan)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press "+keyNames(g.opts.Keys.Serve)+" to serve")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateCleared:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "CLEARED!", subtitle)
	}
}

func keyNames(keys []core.KeyCode) string {
	if len(keys) == 0 {
		return "?"
	}
	s := string(keys[0])
	for _, k := range keys[1:] {
		s += "/" + string(k)
	}
	return s
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
