package platformer

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// footDrop is the distance in pixels from a sprite centre to the row its
// glyph stands on.
const footDrop = 6

// Visual characters for tiles, by layer and kind.
var (
	foregroundCells = map[level.Kind]core.Cell{
		level.KindCollision: {Rune: '█', Color: core.ColorGreen},
		level.KindLethal:    {Rune: '▲', Color: core.ColorBrightRed},
		level.KindGoal:      {Rune: '⚑', Color: core.ColorBrightYellow},
	}
	backgroundCells = map[level.Kind]core.Cell{
		level.KindCollision: {Rune: '▓', Color: core.ColorGray},
		level.KindLethal:    {Rune: '░', Color: core.ColorRed},
		level.KindGoal:      {Rune: '░', Color: core.ColorYellow},
	}
	decorationCell = core.Cell{Rune: '·', Color: core.ColorDarkGray}
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == phaseWon {
		g.drawHUD(dst)
		g.drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Score: %d  |  Press R to play again", g.score()), core.ColorBrightGreen)
		return
	}
	if g.playing == nil {
		return
	}

	g.drawTiles(dst)
	g.drawSprites(dst)
	g.drawHUD(dst)

	switch {
	case g.phase == phaseBanner:
		l := g.playing.Level
		g.drawCenteredMessage(dst, fmt.Sprintf("Level %d", g.current+1), l.Name, core.ColorBrightWhite)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// drawTiles samples the level at the top-left pixel of every play field cell.
func (g *Game) drawTiles(dst *core.Screen) {
	l := g.playing.Level
	cam := g.playing.Camera.Floor()

	for cy := HUDRows; cy < dst.Height(); cy++ {
		py := cam.Y + (cy-HUDRows)*CellH
		for cx := 0; cx < dst.Width(); cx++ {
			px := cam.X + cx*CellW
			if cell, ok := tileCell(l, fixnum.FloorDiv(px, level.TileSize), fixnum.FloorDiv(py, level.TileSize)); ok {
				dst.SetCell(cx, cy, cell)
			}
		}
	}
}

// tileCell picks the glyph for a tile: the foreground wins over the
// background, and tiles without a kind draw as decoration.
func tileCell(l *level.Level, x, y int) (core.Cell, bool) {
	bgID, fgID, ok := l.TilesAt(x, y)
	if !ok {
		return core.Cell{}, false
	}
	bg, fg := l.KindsAt(x, y)

	if c, ok := foregroundCells[fg]; ok {
		return c, true
	}
	if fgID != 0 {
		return decorationCell, true
	}
	if c, ok := backgroundCells[bg]; ok {
		return c, true
	}
	if bgID != 0 {
		return decorationCell, true
	}
	return core.Cell{}, false
}

// drawSprites draws visible objects back to front.
func (g *Game) drawSprites(dst *core.Screen) {
	objects := make([]*sprite.Object, 0, MaxEnemies+1)
	for i := range g.playing.Enemies {
		if o := g.playing.Enemies[i].Sprite(); o != nil {
			objects = append(objects, o)
		}
	}
	objects = append(objects, &g.playing.Player.Entity.Sprite)

	// Lower priority values draw on top, so they go last.
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Priority > objects[j].Priority
	})

	for _, o := range objects {
		if o.Visible {
			g.drawObject(dst, o)
		}
	}
}

// drawObject centres the glyph on the sprite horizontally and stands it on
// the row under the sprite's feet. Spaces are transparent.
func (g *Game) drawObject(dst *core.Screen, o *sprite.Object) {
	glyph, ok := g.sprites.Glyph(o.Frame)
	if !ok {
		return
	}
	if o.HFlip {
		glyph = glyph.Flipped()
	}

	centre := o.Centre()
	x0 := fixnum.FloorDiv(centre.X, CellW) - glyph.Width()/2
	y0 := fixnum.FloorDiv(centre.Y+footDrop, CellH) - glyph.Height() + 1 + HUDRows

	for dy, row := range glyph.Rows {
		y := y0 + dy
		if y < HUDRows {
			continue
		}
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetColor(x0+dx, y, r, glyph.Color)
			}
			dx++
		}
	}
}

// drawHUD fills the top row with the level and score.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	name := ""
	if g.current < len(g.levels) {
		name = g.levels[g.current].Name
	}
	shown := min(g.current+1, len(g.levels))
	dst.DrawTextColor(1, 0, fmt.Sprintf("Level %d/%d  %s", shown, len(g.levels), name), core.ColorBrightWhite)

	right := fmt.Sprintf("Deaths %d  Score %d ", g.deaths, g.score())
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := core.CenteredRect(boxW, 5, dst.Width(), dst.Height())

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
