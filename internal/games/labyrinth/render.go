package labyrinth

import (
	"fmt"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/maze"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall || g.session == nil {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)

	switch {
	case g.noPath:
		g.renderOverlay(dst, noPathMessage, restartMessage)
	case g.gameOver:
		g.renderOverlay(dst, goalMessage, fmt.Sprintf("%d steps  -  %s", g.session.Steps(), restartMessage))
	case g.banner:
		g.renderOverlay(dst, fmt.Sprintf("Maze %d solved!", g.solved), fmt.Sprintf("Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	steps, pathLen := 0, 0
	if g.session != nil {
		steps, pathLen = g.session.Steps(), g.session.PathLen()
	}

	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" %s  Maze %d  %dx%d  Seed %d  Steps %d/%d  Score %d",
			g.Title(), g.solved+1, g.width, g.height, g.seed, steps, pathLen, g.score)
	} else {
		hud = fmt.Sprintf(" %s  %dx%d  Seed %d  Steps %d/%d",
			g.Title(), g.width, g.height, g.seed, steps, pathLen)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderMaze draws walls, overlays and markers, two screen columns per cell.
func (g *Game) renderMaze(dst *core.Screen) {
	w, h := g.session.Size()
	for y := range h {
		for x := range w {
			c := maze.C(x, y)
			switch {
			case !g.session.IsOpen(c):
				g.drawCell(dst, c, '█', '█', core.ColorWhite)
			case g.showVisited && g.trail[c]:
				g.drawCell(dst, c, '░', '░', core.ColorBlue)
			}
		}
	}

	if g.showPath {
		for _, c := range g.session.Remaining() {
			g.drawCell(dst, c, '·', ' ', core.ColorYellow)
		}
	}

	g.drawCell(dst, g.session.Goal(), '[', ']', core.ColorGreen)
	g.drawCell(dst, g.session.Position(), '(', ')', core.ColorRed)
}

func (g *Game) drawCell(dst *core.Screen, c maze.Cell, left, right rune, color core.Color) {
	sx := g.offsetX + c.X*cellColumns
	sy := g.offsetY + c.Y
	dst.SetColored(sx, sy, left, color)
	dst.SetColored(sx+1, sy, right, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
