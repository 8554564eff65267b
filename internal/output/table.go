package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// EmptyCell stands in for blank values so columns stay readable.
const EmptyCell = "-"

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue).Padding(0, 1)
	tableKeyStyle    = StyleNoun.Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableEmptyStyle  = StyleDim.Padding(0, 1)
)

// RenderTable lays out rows under headers. The first column names the row
// and is highlighted. Blank cells show EmptyCell, dimmed.
func RenderTable(headers []string, rows [][]string) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, cell := range row {
			if cell == "" {
				cell = EmptyCell
			}
			cells[i][j] = cell
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableKeyStyle
			case row < len(rows) && col < len(rows[row]) && rows[row][col] == "":
				return tableEmptyStyle
			default:
				return tableCellStyle
			}
		}).
		String()
}
