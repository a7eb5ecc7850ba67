package cubes

import (
	"fmt"

	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/entity"
)

// Render draws the current game state to the screen. The pixel viewport
// is stretched over the whole terminal; every entity becomes a block of
// cells in its sprite's dominant color.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		drawCenteredMessage(dst, "CANNOT START", g.err.Error())
		return
	}
	if g.player == nil {
		return
	}

	for _, c := range g.spawner.Cubes() {
		dst.DrawRectColored(g.toCells(dst, c.Rect), CubeChar, g.assets.Color(c.Kind))
	}
	dst.DrawRectColored(g.toCells(dst, g.player.Rect), PlayerChar, g.assets.Color(entity.KindPlayer))

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Gameplay.CubeSpeed, g.score, g.tickCount)
		levelText := fmt.Sprintf(" Spd: %d ", speed)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// toCells maps a rectangle in viewport pixels to terminal cells. Every
// visible entity covers at least one cell.
func (g *Game) toCells(dst *core.Screen, r core.Rect) core.Rect {
	x0 := floorDiv(r.X*dst.Width(), g.viewport.Width)
	y0 := floorDiv(r.Y*dst.Height(), g.viewport.Height)
	x1 := floorDiv(r.Right()*dst.Width(), g.viewport.Width)
	y1 := floorDiv(r.Bottom()*dst.Height(), g.viewport.Height)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// floorDiv divides rounding toward negative infinity, so that cubes in
// the left or top buffer stay off screen.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Min(core.Max(len(title), len(subtitle))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+core.Max((boxW-len(subtitle))/2, 1), boxY+3, subtitle)
}
