package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render formats a table as aligned terminal text: bold title, bold
// header row, one line per data row, columns sized to their widest cell.
func Render(t Table) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle := lipgloss.NewStyle().PaddingRight(2)

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(t.Title))
		sb.WriteString("\n")
	}

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(widths[i] + 2).Render(h))
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(cellStyle.Width(widths[i] + 2).Render(cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
