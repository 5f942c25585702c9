package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/yamabird/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle(),
	core.ColorBird:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBeak:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorPipe:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPipeEdge:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	core.ColorGrass:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorPanel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorButton:    lipgloss.NewStyle().Foreground(lipgloss.Color("57")),
}

// RenderScreen converts a Screen to a styled string. Adjacent cells with
// the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
