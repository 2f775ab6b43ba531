package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardDims returns the on-screen size of a size x size board.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// tileColor picks the color of a tile value.
func tileColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorGreen
	case 512:
		return core.ColorBrightGreen
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDims(g.size)
	area := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	board := area.CenteredRect(boardW, boardH)
	boardX, boardY := board.X, board.Y

	g.renderHUD(dst, boardX, boardW)
	g.renderGridLines(dst, boardX, boardY)

	switch g.animation.phase {
	case phaseSlide:
		g.renderSliding(dst, boardX, boardY)
	default:
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and max tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048 - " + g.preset.Label(g.size)
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	infoStr := fmt.Sprintf("Max: %d", g.engine.MaxTile())
	dst.DrawText(max(boardX+boardW-len(infoStr), boardX), 1, infoStr)

	if g.lastMove.Changed && g.lastMove.ScoreDelta > 0 {
		gain := fmt.Sprintf("+%d", g.lastMove.ScoreDelta)
		dst.DrawTextColored(boardX+(boardW-len(gain))/2, 2, gain, core.ColorBrightGreen)
	}
}

// renderGridLines draws the cell borders of the board.
func (g *Game) renderGridLines(dst *core.Screen, boardX, boardY int) {
	n := g.size
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws the committed board. While the pop phase runs the
// spawned tile is drawn dimmed.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	var popping *Tile
	if g.animation.phase == phasePop {
		popping = g.animation.spawned
	}

	for _, t := range g.engine.Grid().Tiles() {
		c := g.colorOf(t.Value)
		if popping != nil && t.Pos == popping.Pos && g.animation.progress() < 1 {
			c = core.ColorGray
		}
		g.drawTile(dst, boardX, boardY, float64(t.Pos.Row), float64(t.Pos.Col), t.Value, c)
	}
}

// renderSliding draws every tile of the last move part way between its
// source and destination cell.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	t := g.animation.progress()
	for _, m := range g.animation.slides {
		row, col := m.at(t)
		g.drawTile(dst, boardX, boardY, row, col, m.Value, g.colorOf(m.Value))
	}
}

// drawTile writes a tile value centered in the cell at a (possibly
// fractional) board position.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, row, col float64, v int, c core.Color) {
	cellX := boardX + int(math.Round(col*cellWidth)) + 1
	cellY := boardY + int(math.Round(row*cellHeight)) + 1

	valStr := strconv.Itoa(v)
	padLeft := max((cellWidth-1-len(valStr))/2, 0)

	dst.DrawTextColored(cellX+padLeft, cellY, valStr, c)
}

func (g *Game) colorOf(v int) core.Color {
	if !g.colors {
		return core.ColorDefault
	}
	return tileColor(v)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	switch g.engine.State() {
	case StateWon:
		scoreStr := fmt.Sprintf("Score: %d", g.engine.Score())
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", scoreStr, "Press R to restart")
	case StateLost:
		maxStr := fmt.Sprintf("Max tile: %d", g.engine.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.Rect{X: centerX - boxW/2, Y: centerY - boxH/2, W: boxW, H: boxH}

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
