package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

// Frame draws a rounded box with a title in the top edge and keybind
// hints in the bottom edge:
//
//	╭─ Diagnosis ──────────╮
//	│ content              │
//	╰─ [enter] submit ─────╯
type Frame struct {
	Title    string
	Keybinds []Keybind
	Width    int
	Height   int
	Focused  bool
}

func (f Frame) edgeStyle() lipgloss.Style {
	if f.Focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

// InnerSize is the content area left inside the edges.
func (f Frame) InnerSize() (int, int) {
	return max(f.Width-2, 0), max(f.Height-2, 0)
}

// Render returns exactly Height lines of exactly Width columns. Content is
// cropped or padded to fit.
func (f Frame) Render(content string) string {
	if f.Width < 2 || f.Height < 2 {
		return ""
	}
	innerW, innerH := f.InnerSize()

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	out := make([]string, 0, f.Height)
	out = append(out, f.top(innerW))
	out = append(out, f.sides(lines, innerW)...)
	out = append(out, f.bottom(innerW))
	return strings.Join(out, "\n")
}

func (f Frame) top(innerW int) string {
	es := f.edgeStyle()
	if f.Title == "" {
		return es.Render(cornerTL + strings.Repeat(horizBar, innerW) + cornerTR)
	}
	ts := styles.TitleStyle
	if !f.Focused {
		ts = styles.TextSecondaryStyle.Bold(true)
	}
	title := ts.Render(f.Title)
	// "─ " + title + " "
	fill := innerW - lipgloss.Width(title) - 3
	if fill < 0 {
		title = lipgloss.NewStyle().MaxWidth(max(innerW-3, 0)).Render(title)
		fill = max(innerW-lipgloss.Width(title)-3, 0)
	}
	return es.Render(cornerTL+horizBar+" ") + title + es.Render(" "+strings.Repeat(horizBar, fill)+cornerTR)
}

func (f Frame) bottom(innerW int) string {
	es := f.edgeStyle()
	if !f.Focused || len(f.Keybinds) == 0 {
		return es.Render(cornerBL + strings.Repeat(horizBar, innerW) + cornerBR)
	}
	room := max(innerW-3, 0)
	hints, used := JoinKeybinds(f.Keybinds, room)
	return es.Render(cornerBL+horizBar+" ") + hints + es.Render(" "+strings.Repeat(horizBar, room-used)+cornerBR)
}

func (f Frame) sides(lines []string, innerW int) []string {
	es := f.edgeStyle()
	crop := lipgloss.NewStyle().MaxWidth(innerW)
	left, right := es.Render(vertBar), es.Render(vertBar)
	out := make([]string, len(lines))
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > innerW {
			line = crop.Render(line)
			w = lipgloss.Width(line)
		}
		out[i] = left + line + strings.Repeat(" ", max(innerW-w, 0)) + right
	}
	return out
}
