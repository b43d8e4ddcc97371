package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spaceship/internal/core"
)

// cellStyles maps every combination of core.Style attributes to a lipgloss style.
var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Style]lipgloss.Style {
	all := core.StyleBold | core.StyleReverse | core.StyleBlink
	styles := make(map[core.Style]lipgloss.Style, int(all)+1)
	for s := core.Style(0); s <= all; s++ {
		st := lipgloss.NewStyle()
		if s.Has(core.StyleBold) {
			st = st.Bold(true)
		}
		if s.Has(core.StyleReverse) {
			st = st.Reverse(true)
		}
		if s.Has(core.StyleBlink) {
			st = st.Blink(true)
		}
		styles[s] = st
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startStyle := s.GetCell(x, y).Style

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startStyle == core.StyleNormal {
				sb.WriteString(run.String())
				continue
			}
			style, ok := cellStyles[startStyle]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
