package panels

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/auth"
	"github.com/justinpbarnett/medintel/internal/backendtest"
	"github.com/justinpbarnett/medintel/internal/clinical"
	"github.com/justinpbarnett/medintel/internal/ui/layout"
)

// panelAdapter wraps a Panel into a tea.Model so it can be driven by
// teatest.
type panelAdapter struct {
	panel Panel
	width int
}

func (a panelAdapter) Init() tea.Cmd { return a.panel.Mount() }

func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)
	return a, cmd
}

func (a panelAdapter) View() string { return a.panel.View(a.width) }

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

func testDeps(srv *backendtest.Server) Deps {
	return Deps{
		Ctx:            context.Background(),
		Backend:        api.NewClient(srv.URL),
		Identity:       auth.NewStatic(1, 2),
		Symptoms:       clinical.DefaultSymptoms,
		ScrollLock:     &layout.ScrollLock{},
		ShowDisclaimer: true,
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to p one rune at a time.
func typeText(p Panel, s string) Panel {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

// deliver runs cmd synchronously, feeds its message back to p, and
// returns whatever command p answered with.
func deliver(t *testing.T, p Panel, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	_, next := p.Update(cmd())
	return next
}

// alertFrom runs cmd and asserts it produced an AlertMsg.
func alertFrom(t *testing.T, cmd tea.Cmd) AlertMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected an alert command, got nil")
	}
	raw := cmd()
	msg, ok := raw.(AlertMsg)
	if !ok {
		t.Fatalf("expected AlertMsg, got %T", raw)
	}
	return msg
}
