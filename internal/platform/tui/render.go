package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

// cellStyles caches one lipgloss style per cell color.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorLavender; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := cellStyles[c]; ok {
		return style
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns a cell buffer into styled terminal text. Cells of the
// same color are styled together as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, &run, s, y)
	}
	return sb.String()
}

func writeRow(sb, run *strings.Builder, s *core.Screen, y int) {
	run.Reset()
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
