package connect4

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4/engine"
)

const (
	cellWidth = 3 // screen columns per board column

	// Rows above the board: title, turn line, gap, hover row.
	headerRows = 4
	// Rows below the board: column numbers, gap, status line.
	footerRows = 3

	emptyGlyph  = '·'
	boardColor  = core.ColorBlue
	lineColor   = core.ColorBrightWhite
	titleString = "CONNECT FOUR"
)

// layout is where the board lands on a given screen.
type layout struct {
	x, y   int // top-left corner of the board frame
	w, h   int // frame size
	totalH int
}

func (l layout) frame() core.Rect {
	return core.NewRect(l.x, l.y, l.w, l.h)
}

// cells is the area inside the frame where pieces are drawn.
func (l layout) cells() core.Rect {
	return core.NewRect(l.x+1, l.y+1, l.w-2, l.h-2)
}

func (g *Game) layout(screenW, screenH int) (layout, bool) {
	l := layout{
		w: g.state.Width()*cellWidth + 2,
		h: g.state.Height() + 2,
	}
	l.totalH = headerRows + l.h + footerRows
	if screenW < l.w || screenH < l.totalH {
		return l, false
	}
	area := core.CenteredRect(screenW, screenH, l.w, l.totalH)
	l.x = area.X
	l.y = area.Y + headerRows
	return l, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil {
		return
	}

	l, ok := g.layout(dst.Width(), dst.Height())
	if !ok {
		g.rendered = false
		g.renderTooSmall(dst, l)
		return
	}
	g.cellArea = l.cells()
	g.rendered = true

	g.renderHeader(dst, l)
	g.renderBoard(dst, l)
	g.renderFooter(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, l layout) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", l.w, l.totalH), core.ColorGray)
}

func (g *Game) renderHeader(dst *core.Screen, l layout) {
	top := l.y - headerRows
	dst.DrawTextCentered(top, titleString, core.ColorBrightWhite)

	if g.state.Status().Terminal() {
		dst.DrawTextCentered(top+1, "Game over", core.ColorGray)
		return
	}

	p := g.state.CurrentPlayer()
	style := g.playerStyle(p)
	turn := fmt.Sprintf("%s to move %c", style.Name, style.Glyph)
	dst.DrawTextCentered(top+1, turn, style.Color)

	// The current piece hovers over the cursor column.
	if !g.paused {
		dst.SetColored(g.cellX(l, g.cursor), l.y-1, style.Glyph, style.Color)
	}
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawBox(l.frame(), boardColor)

	winning := make(map[[2]int]bool)
	if g.announced {
		for _, c := range g.state.WinningLine(g.state.Winner()) {
			winning[c] = true
		}
	}

	for row := 0; row < g.state.Height(); row++ {
		y := l.y + 1 + row
		for col := 0; col < g.state.Width(); col++ {
			x := g.cellX(l, col)
			cell := g.state.CellAt(row, col)
			if cell == engine.Empty {
				dst.SetColored(x, y, emptyGlyph, core.ColorGray)
				continue
			}
			style := g.playerStyle(cell)
			color := style.Color
			if winning[[2]int{row, col}] {
				color = lineColor
			}
			dst.SetColored(x, y, style.Glyph, color)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, l layout) {
	numbersY := l.y + l.h
	for col := 0; col < g.state.Width(); col++ {
		label := strconv.Itoa(col + 1)
		x := l.x + 1 + col*cellWidth + (cellWidth-core.TextWidth(label))/2
		color := core.ColorGray
		if col == g.cursor && !g.state.Status().Terminal() {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, numbersY, label, color)
	}

	statusY := numbersY + 2
	switch {
	case g.hint != "":
		dst.DrawTextCentered(statusY, g.hint, core.ColorOrange)
	case g.state.Status().Terminal() && !g.announced:
		// Final position only; the result follows shortly.
	default:
		dst.DrawTextCentered(statusY, fmt.Sprintf("Moves: %d", g.state.Moves()), core.ColorGray)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	cx, cy := l.frame().Center()

	if g.paused {
		drawOverlay(dst, cx, cy, core.ColorDefault, "PAUSED", "Press P to resume")
		return
	}

	if banner := g.Banner(); banner != "" {
		color := core.ColorBrightWhite
		if w := g.state.Winner(); w != engine.NoPlayer {
			color = g.playerStyle(w).Color
		}
		drawOverlay(dst, cx, cy, color, banner, "Press R to play again")
	}
}

// cellX returns the screen x of the piece in column col.
func (g *Game) cellX(l layout, col int) int {
	return l.x + 1 + col*cellWidth + cellWidth/2
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, core.TextWidth(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = core.Clamp(centerX-box.W/2, 0, core.Max(dst.Width()-box.W, 0))
	box.Y = core.Clamp(centerY-box.H/2, 0, core.Max(dst.Height()-box.H, 0))

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)

	for i, line := range lines {
		x := box.X + (box.W-core.TextWidth(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}
