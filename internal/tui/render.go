package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dialnav/internal/gfx"
)

// RenderCanvas styles each run of same-coloured cells once. Blank cells are
// left unstyled.
func RenderCanvas(c *gfx.Canvas) string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		var run strings.Builder
		var runColor gfx.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyle(runColor).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.Width; col++ {
			r, color := c.Cell(row, col)
			if r == 0 || r == ' ' || r == '⠀' {
				flush()
				b.WriteByte(' ')
				continue
			}
			if run.Len() > 0 && color != runColor {
				flush()
			}
			runColor = color
			run.WriteRune(r)
		}
		flush()
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(c gfx.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.String()))
}
