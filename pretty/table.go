package pretty

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Padding(0, 1).Align(lipgloss.Center)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Padding(0, 1)
)

// RenderTable draws a table with a separator line between every row. The
// first column is centered and colored as a key, the rest as values.
func RenderTable(title string, headers []string, rows [][]string) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			default:
				return valueStyle
			}
		})
	if Colorless || Disabled {
		tbl = tbl.Border(lipgloss.ASCIIBorder())
	}
	rendered := tbl.String()
	if width := TerminalWidth(); lipgloss.Width(rendered) > width {
		rendered = tbl.Width(width).String()
	}
	if len(title) == 0 {
		return rendered
	}
	heading := lipgloss.PlaceHorizontal(lipgloss.Width(rendered), lipgloss.Center, titleStyle.Render(title))
	return lipgloss.JoinVertical(lipgloss.Left, heading, rendered)
}
