package render

import (
	"fmt"
	"io"

	"budget-tracker/internal/palette"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(12).PaddingLeft(2)
)

// WriteText prints the list for a terminal, coloring amounts by row color
func WriteText(w io.Writer, list List) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(list.Title)); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	if _, err := fmt.Fprintln(w, sectionStyle.Render(list.Section)); err != nil {
		return fmt.Errorf("write section: %w", err)
	}

	for _, row := range list.Rows {
		amountStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(row.Color)))
		line := labelStyle.Render(row.Direction) + amountStyle.Render(fmt.Sprintf("%12s", row.Amount))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write row %s: %w", row.ID, err)
		}
	}

	return nil
}
