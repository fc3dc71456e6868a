package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/medintel/internal/outcome"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
	"github.com/justinpbarnett/medintel/internal/ui/text"
)

const flashDurationVal = 4 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type healthState int

const (
	healthUnknown healthState = iota
	healthUp
	healthDown
)

type StatusBar struct {
	width    int
	backend  string
	health   healthState
	panel    ID
	state    outcome.State
	spinner  spinner.Model
	flash    string
	level    FlashLevel
	flashSeq int
}

func NewStatusBar(backend string) StatusBar {
	return StatusBar{
		backend: backend,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// Tick starts the spinner animation.
func (s StatusBar) Tick() tea.Msg { return s.spinner.Tick() }

func (s StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case HealthMsg:
		if msg.Err != nil {
			s.health = healthDown
		} else {
			s.health = healthUp
		}
	}
	return s, nil
}

func (s *StatusBar) SetSize(w int) { s.width = w }

// SetPanel records the active panel and its request state.
func (s *StatusBar) SetPanel(id ID, state outcome.State) {
	s.panel = id
	s.state = state
}

// SetFlash shows msg and returns the sequence to pass to ClearFlash.
func (s *StatusBar) SetFlash(msg string, level FlashLevel) int {
	s.flashSeq++
	s.flash = msg
	s.level = level
	return s.flashSeq
}

// ClearFlash removes the flash if seq is still the latest one.
func (s *StatusBar) ClearFlash(seq int) {
	if seq == s.flashSeq {
		s.flash = ""
	}
}

func (s StatusBar) Flash() string { return s.flash }

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	left := " " + styles.LogoLeftStyle.Render("med") + styles.LogoRightStyle.Render("intel") +
		" " + styles.TextSecondaryStyle.Render(Version)

	var dot string
	switch s.health {
	case healthUp:
		dot = lipgloss.NewStyle().Foreground(styles.StatusSuccess).Render("●")
	case healthDown:
		dot = lipgloss.NewStyle().Foreground(styles.StatusError).Render("●")
	default:
		dot = lipgloss.NewStyle().Foreground(styles.StatusIdle).Render("○")
	}
	left += sep + dot + " " + styles.TextSecondaryStyle.Render(text.Truncate(s.backend, 40))

	state := s.panel.String() + ": " + s.state.String()
	switch s.state {
	case outcome.Pending:
		state = s.spinner.View() + " " + styles.PendingStyle.Render(state)
	case outcome.Failed:
		state = styles.ErrorStyle.Render(state)
	case outcome.Succeeded:
		state = lipgloss.NewStyle().Foreground(styles.StatusSuccess).Render(state)
	default:
		state = styles.TextSecondaryStyle.Render(state)
	}
	left += sep + state

	if s.flash != "" {
		var icon string
		var color lipgloss.TerminalColor
		switch s.level {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default:
			icon, color = "●", styles.StatusPending
		}
		left += sep + lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon+" "+s.flash)
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	if s.width > 0 && lipgloss.Width(line) > s.width {
		line = text.Truncate(line, s.width)
	}
	return line
}
