package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cellStyle = func(modifiable bool) lipgloss.Style {
		if modifiable {
			return lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")) // Entered cells: light gray background, white text
		}
		return lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("236")) // Given hints: dark gray background
	}

	cursorCellStyle = func(modifiable bool) lipgloss.Style {
		if modifiable {
			return lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("34")) // Cursor on an enterable cell: green
		}
		return lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("22")) // Cursor on a given hint: dark green
	}

	errorCellStyle = func(isCursor bool) lipgloss.Style {
		if isCursor {
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15"))
		}
		return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15"))
	}

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Margin(1, 0, 0, 0)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("220"))

	winTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
)

// formatCell renders one cell with borders between box columns.
func formatCell(isError, isCursor, modifiable bool, col int, c string) string {
	var s lipgloss.Style

	switch {
	case isError:
		s = errorCellStyle(isCursor)
	case isCursor:
		s = cursorCellStyle(modifiable)
	default:
		s = cellStyle(modifiable)
	}

	// Vertical separators between groups of 3 cells
	if col == 2 || col == 5 {
		return s.Render(c) + lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).Margin(0, 1).Render("")
	}

	return s.Render(c)
}

// formatRow appends horizontal separators between groups of 3 rows.
func formatRow(row int, r string) string {
	if row == 2 || row == 5 {
		rSize, _ := lipgloss.Size(r)
		border := strings.Repeat("─", (rSize/3)-1)
		return r + "\n" + border + "┼" + "─" + border + "┼" + border
	}
	return r
}
