package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
)

// RenderTabBar draws the numbered tab row with active highlighted.
func RenderTabBar(active ID, width int) string {
	tabs := make([]string, 0, len(IDs))
	for i, id := range IDs {
		label := fmt.Sprintf("%d %s", i+1, id.Short())
		if id == active {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	row := " " + strings.Join(tabs, styles.TextDimStyle.Render("│"))
	w := lipgloss.Width(row)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row + strings.Repeat(" ", width-w)
}
