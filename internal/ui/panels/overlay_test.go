package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestAlertDismiss(t *testing.T) {
	a := NewAlert(AlertMsg{Title: "Error diagnosing symptoms. Please try again.", Body: "Could not reach the backend."}, 50)

	for _, k := range []string{"q", "1", "j"} {
		if _, cmd := a.Update(keyPress(k)); cmd != nil {
			t.Errorf("key %q should be swallowed", k)
		}
	}
	for _, k := range []string{"enter", "esc"} {
		_, cmd := a.Update(keyPress(k))
		if cmd == nil {
			t.Fatalf("key %q should dismiss", k)
		}
		if _, ok := cmd().(CloseModalMsg); !ok {
			t.Errorf("key %q: expected CloseModalMsg", k)
		}
	}
}

func TestAlertView(t *testing.T) {
	a := NewAlert(AlertMsg{Title: "Error checking drug interactions. Please try again.", Body: "The server responded 500: boom"}, 40)
	view := a.View()
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line width %d, want 40", w)
		}
	}
	if !strings.Contains(view, "responded 500") {
		t.Error("missing body")
	}
}

func TestHelpOverlayClose(t *testing.T) {
	h := NewHelpOverlay()
	for _, k := range []string{"esc", "?", "q"} {
		_, cmd := h.Update(keyPress(k))
		if cmd == nil {
			t.Fatalf("key %q should close help", k)
		}
		if _, ok := cmd().(CloseModalMsg); !ok {
			t.Errorf("key %q: expected CloseModalMsg", k)
		}
	}
	if _, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}); cmd != nil {
		t.Error("other keys should be ignored")
	}
	if !strings.Contains(h.View(), "Keybinds") {
		t.Error("missing title")
	}
}
