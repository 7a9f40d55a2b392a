package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colorStyles maps cell colors to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:      lipgloss.NewStyle(),
	ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI escapes.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
