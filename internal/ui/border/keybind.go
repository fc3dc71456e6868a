package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
)

// Keybind is one hint in a frame footer, rendered as [key] label.
type Keybind struct {
	Key   string
	Label string
}

var (
	keyStyle   = lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(styles.KeybindLabel)
)

func (kb Keybind) String() string {
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(" "+kb.Label)
}

// Width is the visible width of the rendered hint.
func (kb Keybind) Width() int {
	return ansi.StringWidth(kb.Key) + ansi.StringWidth(kb.Label) + 3
}

// JoinKeybinds renders as many hints as fit in maxWidth, separated by two
// spaces. Hints that do not fit are dropped from the end.
func JoinKeybinds(kbs []Keybind, maxWidth int) (string, int) {
	var parts []string
	used := 0
	for _, kb := range kbs {
		w := kb.Width()
		if len(parts) > 0 {
			w += 2
		}
		if used+w > maxWidth {
			break
		}
		parts = append(parts, kb.String())
		used += w
	}
	return strings.Join(parts, "  "), used
}
