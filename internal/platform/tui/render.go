package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorDoor:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorPellet:      lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorPower:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorPacman:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBlinky:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorPinky:       lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColorInky:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorClyde:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorScared:      lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColorScaredFlash: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorEyes:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
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
