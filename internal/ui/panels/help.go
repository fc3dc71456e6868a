package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
)

type HelpOverlay struct {
	width int
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{width: 48}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true).Width(10)

	kv := func(key, desc string) string {
		return "  " + keyStyle.Render(key) + styles.TextPrimaryStyle.Render(desc)
	}

	lines := []string{
		styles.TitleStyle.Render("Panels"),
		kv("1-4", "Jump to panel"),
		kv("] / [", "Next / previous panel"),
		kv("pgup/dn", "Scroll panel"),
		"",
		styles.TitleStyle.Render("Diagnosis"),
		kv("j/k", "Move through symptoms"),
		kv("space", "Toggle symptom"),
		kv("enter", "Diagnose"),
		"",
		styles.TitleStyle.Render("Forms"),
		kv("i / o", "Edit field / choose file"),
		kv("tab", "Next field"),
		kv("esc", "Leave field"),
		kv("enter", "Submit"),
		kv("y", "Copy extracted text"),
		"",
		styles.TitleStyle.Render("Global"),
		kv("?", "Toggle this help"),
		kv("q", "Quit"),
	}

	f := border.Frame{
		Title:    "Keybinds",
		Keybinds: []border.Keybind{{Key: "esc", Label: "close"}},
		Width:    h.width,
		Height:   len(lines) + 2,
		Focused:  true,
	}
	return f.Render(strings.Join(lines, "\n"))
}
