package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
)

// minimap origin offset from the screen corner, in cells
const mapOrigin = 1

// Minimap draws the top-down overlay: every grid cell, the exit highlighted,
// the player dot with a heading indicator, and the session info block beside
// the map. Skipped entirely when the profile hides it (ctx.ShowMinimap).
func Minimap(buf *Buffer, ctx Context, grid maze.Grid, px, py, heading, elapsed float64) {
	if !ctx.ShowMinimap || grid.Size() == 0 {
		return
	}

	scale := constants.MinimapSize / grid.Size()
	if scale < 1 {
		scale = 1
	}
	side := grid.Size() * scale

	buf.FillRect(mapOrigin, mapOrigin, side, side, RGBMapBack)

	for y := 0; y < grid.Size(); y++ {
		for x := 0; x < grid.Size(); x++ {
			bg := RGBBlack
			if grid.At(x, y) == maze.Wall {
				bg = RGBWhite
			}
			if x == ctx.Exit.X && y == ctx.Exit.Y {
				bg = RGBGreen
			}
			buf.FillRect(mapOrigin+x*scale, mapOrigin+y*scale, scale, scale, bg)
		}
	}

	// Player dot plus a short heading segment.
	mx := mapOrigin + int(px*float64(scale))
	my := mapOrigin + int(py*float64(scale))
	for t := 1.0; t <= constants.MinimapHeadingLength; t++ {
		hx := mx + int(math.Round(math.Cos(heading)*t))
		hy := my + int(math.Round(math.Sin(heading)*t))
		if hx >= mapOrigin && hx < mapOrigin+side && hy >= mapOrigin && hy < mapOrigin+side {
			buf.SetFg(hx, hy, '·', RGBGreen)
		}
	}
	buf.SetFg(mx, my, '●', RGBRed)

	// Session info beside the map.
	infoX := mapOrigin + side + 2
	buf.Text(infoX, mapOrigin, fmt.Sprintf("Player: %s", ctx.Player), RGBWhite)
	buf.Text(infoX, mapOrigin+1, fmt.Sprintf("Difficulty: %s", ctx.Difficulty), RGBWhite)
	buf.Text(infoX, mapOrigin+2, fmt.Sprintf("Time: %.1fs", elapsed), RGBWhite)
	buf.Text(infoX, mapOrigin+3, fmt.Sprintf("Goal: (%d, %d)", ctx.Exit.X, ctx.Exit.Y), RGBWhite)
}

// Controls draws the key hints along the right edge. Shown with the minimap;
// hard mode plays without either.
func Controls(buf *Buffer, ctx Context) {
	if !ctx.ShowMinimap {
		return
	}

	hints := []string{
		"W/UP    forward",
		"S/DOWN  back",
		"A/LEFT  turn left",
		"D/RIGHT turn right",
		"Q/E     strafe",
		"ESC     quit to menu",
	}
	x := ctx.Width - 22
	for i, h := range hints {
		buf.Text(x, 1+i, h, RGBWhite)
	}
}

// Summary draws the one-shot win screen presented after completion.
func Summary(buf *Buffer, ctx Context, seconds float64) {
	buf.FillRect(0, 0, ctx.Width, ctx.Height, RGBBlack)

	mid := ctx.Height / 2
	buf.TextCentered(mid-3, "VICTORY!", RGBGreen)
	buf.TextCentered(mid-1, fmt.Sprintf("Time: %.2f seconds", seconds), RGBWhite)
	buf.TextCentered(mid, fmt.Sprintf("Player: %s", ctx.Player), RGBWhite)
	buf.TextCentered(mid+1, fmt.Sprintf("Difficulty: %s", ctx.Difficulty), RGBWhite)
	buf.TextCentered(mid+3, "Press any key to exit", RGBGray)
}
