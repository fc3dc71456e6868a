package panels

import tea "github.com/charmbracelet/bubbletea"

// AlertMsg asks the shell to show a blocking notice.
type AlertMsg struct {
	Title string
	Body  string
}

// CloseModalMsg signals that the open modal should be closed.
type CloseModalMsg struct{}

// FlashMsg asks the status bar to show a transient message.
type FlashMsg struct {
	Text  string
	Level FlashLevel
}

// ClearFlashMsg clears the flash it was scheduled for. A newer flash is
// left alone.
type ClearFlashMsg struct {
	Seq int
}

// HealthMsg reports the result of the startup backend probe.
type HealthMsg struct {
	Message string
	Err     error
}

func alertCmd(title, body string) tea.Cmd {
	return func() tea.Msg { return AlertMsg{Title: title, Body: body} }
}
