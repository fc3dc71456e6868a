package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/medintel/internal/outcome"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
	"github.com/justinpbarnett/medintel/internal/ui/text"
)

const telemedicineBlurb = "MedIntel integrates seamlessly with telemedicine platforms, enabling rural and remote areas to access AI-assisted diagnostics, bridging the healthcare gap."

// TelemedicinePanel is static information.
type TelemedicinePanel struct{}

func NewTelemedicinePanel() *TelemedicinePanel { return &TelemedicinePanel{} }

func (p *TelemedicinePanel) ID() ID                          { return Telemedicine }
func (p *TelemedicinePanel) Mount() tea.Cmd                  { return nil }
func (p *TelemedicinePanel) Unmount()                        {}
func (p *TelemedicinePanel) Update(tea.Msg) (Panel, tea.Cmd) { return p, nil }
func (p *TelemedicinePanel) Keybinds() []border.Keybind      { return nil }
func (p *TelemedicinePanel) Capturing() bool                 { return false }
func (p *TelemedicinePanel) Status() outcome.State           { return outcome.Idle }

func (p *TelemedicinePanel) View(width int) string {
	var lines []string
	for _, l := range text.WrapText(telemedicineBlurb, max(width, 1)) {
		lines = append(lines, styles.TextPrimaryStyle.Render(l))
	}
	return strings.Join(lines, "\n")
}
