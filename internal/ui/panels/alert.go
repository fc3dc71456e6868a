package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
	"github.com/justinpbarnett/medintel/internal/ui/text"
)

// Alert is a blocking notice. It swallows every key until dismissed.
type Alert struct {
	title string
	body  string
	width int
}

func NewAlert(msg AlertMsg, width int) *Alert {
	return &Alert{title: msg.Title, body: msg.Body, width: width}
}

func (a *Alert) Title() string { return a.title }
func (a *Alert) Body() string  { return a.body }

func (a *Alert) Update(msg tea.Msg) (*Alert, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			return a, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return a, nil
}

func (a *Alert) View() string {
	inner := max(a.width-4, 1)
	var lines []string
	for _, l := range text.WrapText(a.title, inner) {
		lines = append(lines, " "+styles.ErrorStyle.Render(l))
	}
	if a.body != "" {
		lines = append(lines, "")
		for _, l := range text.WrapText(a.body, inner) {
			lines = append(lines, " "+styles.TextPrimaryStyle.Render(l))
		}
	}
	f := border.Frame{
		Title:    "Alert",
		Keybinds: []border.Keybind{{Key: "enter", Label: "ok"}},
		Width:    a.width,
		Height:   len(lines) + 2,
		Focused:  true,
	}
	return f.Render(strings.Join(lines, "\n"))
}
