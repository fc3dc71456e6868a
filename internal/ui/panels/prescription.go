package panels

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/outcome"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
	"github.com/justinpbarnett/medintel/internal/ui/text"
)

const uploadFailed = "Error uploading prescription. Please try again."

// PrescriptionPanel uploads a prescription image and shows the text the
// backend extracted from it. It holds the shell scroll lock while mounted.
type PrescriptionPanel struct {
	deps     Deps
	path     textinput.Model
	editing  bool
	selected string
	tracker  *outcome.Tracker[api.PrescriptionResult]
	release  func()
}

func NewPrescriptionPanel(deps Deps) *PrescriptionPanel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "path/to/prescription.png"
	ti.Width = 56

	return &PrescriptionPanel{
		deps:    deps,
		path:    ti,
		tracker: outcome.NewTracker[api.PrescriptionResult](deps.context()),
	}
}

func (p *PrescriptionPanel) ID() ID                { return Prescription }
func (p *PrescriptionPanel) Capturing() bool       { return p.editing }
func (p *PrescriptionPanel) Status() outcome.State { return p.tracker.State() }

func (p *PrescriptionPanel) Outcome() outcome.Outcome[api.PrescriptionResult] {
	return p.tracker.Outcome()
}

func (p *PrescriptionPanel) Mount() tea.Cmd {
	if p.deps.ScrollLock != nil && p.release == nil {
		p.release = p.deps.ScrollLock.Acquire()
	}
	return nil
}

func (p *PrescriptionPanel) Unmount() {
	p.tracker.Close()
	if p.release != nil {
		p.release()
	}
}

func (p *PrescriptionPanel) Keybinds() []border.Keybind {
	if p.editing {
		return []border.Keybind{
			{Key: "enter", Label: "select"},
			{Key: "esc", Label: "cancel"},
		}
	}
	kbs := []border.Keybind{
		{Key: "o", Label: "choose file"},
		{Key: "enter", Label: "upload"},
	}
	if p.extracted() != "" {
		kbs = append(kbs, border.Keybind{Key: "y", Label: "copy text"})
	}
	return kbs
}

// SelectFile replaces the selected file. No type or size check is made.
func (p *PrescriptionPanel) SelectFile(path string) {
	p.selected = strings.TrimSpace(path)
}

// Selected returns the currently selected path, or "".
func (p *PrescriptionPanel) Selected() string { return p.selected }

func (p *PrescriptionPanel) extracted() string {
	out := p.tracker.Outcome()
	if out.State != outcome.Succeeded {
		return ""
	}
	return out.Value.ExtractedText
}

// Submit uploads the selected file.
func (p *PrescriptionPanel) Submit() tea.Cmd {
	if p.tracker.Pending() {
		return nil
	}
	if p.selected == "" {
		err := &api.ValidationError{Field: "file", Reason: "no file selected"}
		return alertCmd(uploadFailed, err.Error())
	}
	id, err := p.deps.Identity.Identity(p.deps.context())
	if err != nil {
		return alertCmd(uploadFailed, err.Error())
	}
	req := api.UploadRequest{Path: p.selected, PatientID: id.PatientID, DoctorID: id.DoctorID}
	backend := p.deps.Backend
	return p.tracker.Submit(func(ctx context.Context) (api.PrescriptionResult, error) {
		return backend.UploadPrescription(ctx, req)
	})
}

// Yank copies the extracted text to the clipboard.
func (p *PrescriptionPanel) Yank() tea.Cmd {
	txt := p.extracted()
	if txt == "" || p.deps.Clipboard == nil {
		return nil
	}
	clip := p.deps.Clipboard
	return func() tea.Msg {
		if err := clip(txt); err != nil {
			return FlashMsg{Text: "copy failed: " + err.Error(), Level: FlashError}
		}
		return FlashMsg{Text: "copied to clipboard", Level: FlashSuccess}
	}
}

func (p *PrescriptionPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case outcome.ResultMsg[api.PrescriptionResult]:
		if !p.tracker.Resolve(msg) {
			return p, nil
		}
		return p, failureAlert(uploadFailed, msg.Err)

	case tea.KeyMsg:
		if p.editing {
			switch msg.String() {
			case "esc":
				p.editing = false
				p.path.Blur()
				return p, nil
			case "enter":
				p.editing = false
				p.path.Blur()
				p.SelectFile(p.path.Value())
				return p, nil
			}
			var cmd tea.Cmd
			p.path, cmd = p.path.Update(msg)
			return p, cmd
		}
		switch msg.String() {
		case "o", "i":
			p.editing = true
			p.path.SetValue(p.selected)
			p.path.CursorEnd()
			return p, p.path.Focus()
		case "enter":
			return p, p.Submit()
		case "y":
			return p, p.Yank()
		}
		return p, nil
	}

	if p.editing {
		var cmd tea.Cmd
		p.path, cmd = p.path.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PrescriptionPanel) View(width int) string {
	lines := []string{styles.SectionStyle.Render("Prescription file")}
	switch {
	case p.editing:
		lines = append(lines, p.path.View())
	case p.selected == "":
		lines = append(lines, styles.TextDimStyle.Render("No file selected. Press o to choose one."))
	default:
		lines = append(lines, styles.TextPrimaryStyle.Render(filepath.Base(p.selected))+" "+
			styles.TextDimStyle.Render(text.Truncate(filepath.Dir(p.selected), max(width/2, 1))))
	}
	lines = append(lines, "")

	out := p.tracker.Outcome()
	switch out.State {
	case outcome.Pending:
		lines = append(lines, styles.PendingStyle.Render("Uploading..."))
	case outcome.Failed:
		lines = append(lines, styles.ErrorStyle.Render(uploadFailed))
	case outcome.Succeeded:
		lines = append(lines, styles.TitleStyle.Render("Extracted Text:"))
		lines = append(lines, text.WrapText(out.Value.ExtractedText, max(width, 1))...)
	default:
		lines = append(lines, styles.TextDimStyle.Render("Press enter to upload"))
	}

	lines = append(lines, "", styles.DisclaimerStyle.Render("© 2025 MedIntel - The Ultimate Healthcare Assistant"))
	return strings.Join(lines, "\n")
}
