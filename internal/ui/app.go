package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/auth"
	"github.com/justinpbarnett/medintel/internal/config"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/clipboard"
	"github.com/justinpbarnett/medintel/internal/ui/layout"
	"github.com/justinpbarnett/medintel/internal/ui/panels"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
)

const healthTimeout = 5 * time.Second

// App is the tab shell. It owns exactly one mounted panel and replaces it
// wholesale on every tab change.
type App struct {
	config      *config.Config
	client      *api.Client
	deps        panels.Deps
	scrollLock  *layout.ScrollLock
	ctx         context.Context
	cancel      context.CancelFunc
	width       int
	height      int
	layout      layout.Layout
	active      panels.ID
	panel       panels.Panel
	mountCmd    tea.Cmd
	scroll      layout.Scroller
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	alert       *panels.Alert
	keys        KeyMap
	ready       bool
}

func NewApp(cfg *config.Config, client *api.Client, identity auth.Provider) App {
	ctx, cancel := context.WithCancel(context.Background())
	lock := &layout.ScrollLock{}

	disclaimer := cfg.UI.ShowDisclaimer == nil || *cfg.UI.ShowDisclaimer

	start, err := panels.ParseID(cfg.UI.DefaultPanel)
	if err != nil && cfg.UI.DefaultPanel != "" {
		log.Printf("warning: %v, starting on %s", err, start)
	}

	a := App{
		config:     cfg,
		client:     client,
		scrollLock: lock,
		ctx:        ctx,
		cancel:     cancel,
		statusBar:  panels.NewStatusBar(client.BaseURL()),
		keys:       DefaultKeyMap(),
		deps: panels.Deps{
			Ctx:            ctx,
			Backend:        client,
			Identity:       identity,
			Symptoms:       cfg.Diagnosis.Symptoms,
			Clipboard:      clipboard.Write,
			ScrollLock:     lock,
			ShowDisclaimer: disclaimer,
		},
	}
	a.mountCmd = a.Select(start)
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.mountCmd, a.statusBar.Tick}
	if a.config.Backend.HealthCheck == nil || *a.config.Backend.HealthCheck {
		cmds = append(cmds, a.checkHealth())
	}
	return tea.Batch(cmds...)
}

// Active returns the id of the mounted panel.
func (a App) Active() panels.ID { return a.active }

// Panel returns the mounted panel instance.
func (a App) Panel() panels.Panel { return a.panel }

// Select mounts a fresh instance of id, unmounting the current panel first.
// Selecting the active panel is a no-op.
func (a *App) Select(id panels.ID) tea.Cmd {
	if a.panel != nil && id == a.active {
		return nil
	}
	if a.panel != nil {
		a.panel.Unmount()
	}
	a.active = id
	a.panel = panels.New(id, a.deps)
	a.scroll = layout.Scroller{}
	cmd := a.panel.Mount()
	a.syncStatus()
	return cmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.statusBar.SetSize(a.layout.StatusBarWidth)
		return a, nil

	case AlertMsg:
		log.Printf("alert: %s: %s", msg.Title, msg.Body)
		a.alert = panels.NewAlert(msg, layout.ModalWidth(a.width, 36, 64))
		return a, nil

	case CloseModalMsg:
		if a.alert != nil {
			a.alert = nil
		} else {
			a.helpOverlay = nil
		}
		return a, nil

	case FlashMsg:
		seq := a.statusBar.SetFlash(msg.Text, msg.Level)
		return a, tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
			return ClearFlashMsg{Seq: seq}
		})

	case ClearFlashMsg:
		a.statusBar.ClearFlash(msg.Seq)
		return a, nil

	case HealthMsg:
		if msg.Err != nil {
			log.Printf("warning: backend health check failed: %v", msg.Err)
		}
		var cmd tea.Cmd
		a.statusBar, cmd = a.statusBar.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.statusBar, cmd = a.statusBar.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.routeToPanel(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, a.quit()
	}

	if a.alert != nil {
		var cmd tea.Cmd
		a.alert, cmd = a.alert.Update(msg)
		return a, cmd
	}
	if a.helpOverlay != nil {
		var cmd tea.Cmd
		*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
		return a, cmd
	}
	if a.panel.Capturing() {
		return a.routeToPanel(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keys.Help):
		a.helpOverlay = panels.NewHelpOverlay()
		return a, nil
	case key.Matches(msg, a.keys.NextPanel):
		return a, a.Select(a.active.Next())
	case key.Matches(msg, a.keys.PrevPanel):
		return a, a.Select(a.active.Prev())
	case key.Matches(msg, a.keys.PageUp):
		a.scrollBody(-1)
		return a, nil
	case key.Matches(msg, a.keys.PageDown):
		a.scrollBody(1)
		return a, nil
	}
	for i, b := range a.keys.Panels {
		if key.Matches(msg, b) {
			return a, a.Select(panels.IDs[i])
		}
	}
	return a.routeToPanel(msg)
}

// routeToPanel hands msg to the mounted panel. Results addressed to an
// earlier panel instance are dropped by the panel's tracker.
func (a App) routeToPanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)
	a.syncStatus()
	return a, cmd
}

func (a *App) quit() tea.Cmd {
	if a.panel != nil {
		a.panel.Unmount()
	}
	a.cancel()
	return tea.Quit
}

func (a *App) syncStatus() {
	a.statusBar.SetPanel(a.active, a.panel.Status())
}

// ScrollOffset is the first visible body row.
func (a App) ScrollOffset() int { return a.scroll.Offset }

func (a *App) scrollBody(dir int) {
	if a.scrollLock.Locked() || a.layout.TooSmall {
		return
	}
	frame := a.bodyFrame()
	w, h := frame.InnerSize()
	a.scroll.Page(dir, len(a.bodyLines(w)), h)
}

func (a App) bodyFrame() border.Frame {
	return border.Frame{
		Title:    a.active.Title(),
		Keybinds: a.panel.Keybinds(),
		Width:    a.layout.BodyWidth,
		Height:   a.layout.BodyHeight,
		Focused:  true,
	}
}

func (a App) bodyLines(innerW int) []string {
	lines := strings.Split(a.panel.View(max(innerW-2, 1)), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return lines
}

func (a App) checkHealth() tea.Cmd {
	client, parent := a.client, a.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, healthTimeout)
		defer cancel()
		msg, err := client.Health(ctx)
		return HealthMsg{Message: msg, Err: err}
	}
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	frame := a.bodyFrame()
	innerW, innerH := frame.InnerSize()
	lines := a.bodyLines(innerW)
	if len(lines) > innerH && !a.scrollLock.Locked() {
		frame.Keybinds = append(frame.Keybinds, border.Keybind{Key: "pgup/dn", Label: "scroll"})
	}
	scroll := a.scroll
	body := frame.Render(strings.Join(scroll.Window(lines, innerH), "\n"))

	full := lipgloss.JoinVertical(lipgloss.Left,
		panels.RenderTabBar(a.active, a.layout.TabBarWidth),
		body,
		a.statusBar.View(),
	)

	var modal string
	switch {
	case a.alert != nil:
		modal = a.alert.View()
	case a.helpOverlay != nil:
		modal = a.helpOverlay.View()
	}
	if modal != "" {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, modal,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}
	return full
}
