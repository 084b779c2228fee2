package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chase8/internal/config"
	"chase8/internal/core"
)

// PaletteStyle builds the lipgloss style for a two-color palette. The whole
// screen is drawn with exactly these two colors.
func PaletteStyle(p config.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.FG)).
		Background(lipgloss.Color(p.BG))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Styling whole rows keeps the ANSI escape overhead to two sequences per
// line.
func RenderScreen(s *core.Screen, style lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(style.Render(s.Row(y)))
	}
	return sb.String()
}
