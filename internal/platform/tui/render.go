package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
)

// palette maps core colors to ANSI 256 color codes.
var palette = map[core.Color]string{
	core.ColorRed:    "9",
	core.ColorGreen:  "10",
	core.ColorYellow: "11",
	core.ColorBlue:   "12",
	core.ColorWhite:  "15",
	core.ColorGray:   "240",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	current := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
