package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/auth"
	"github.com/justinpbarnett/medintel/internal/backendtest"
	"github.com/justinpbarnett/medintel/internal/config"
)

const waitDuration = 3 * time.Second

func newTestApp(tb testing.TB, srv *backendtest.Server) App {
	tb.Helper()
	cfg := config.DefaultConfig()
	cfg.Backend.URL = srv.URL
	a := NewApp(&cfg, api.NewClient(srv.URL), auth.NewStatic(1, 2))
	a.deps.Clipboard = func(string) error { return nil }
	tb.Cleanup(func() { a.quit() })
	return a
}

// appAdapter keeps the App behind a pointer so tests can inspect it after
// teatest has driven it.
type appAdapter struct {
	app App
}

func (a *appAdapter) Init() tea.Cmd { return a.app.Init() }

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string { return a.app.View() }

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

func press(a App, keys ...string) (App, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = a.Update(keyMsg(k))
		a = m.(App)
	}
	return a, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(a App, msg tea.Msg) (App, tea.Cmd) {
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func sized(a App, w, h int) App {
	a, _ = send(a, tea.WindowSizeMsg{Width: w, Height: h})
	return a
}
