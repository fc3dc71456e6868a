package panels

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/clinical"
	"github.com/justinpbarnett/medintel/internal/outcome"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
	"github.com/justinpbarnett/medintel/internal/ui/text"
)

const (
	diagnoseFailed      = "Error diagnosing symptoms. Please try again."
	diagnosisDisclaimer = "Note: This is an AI-assisted diagnosis. Always consult with a healthcare professional for accurate medical advice."
)

// DiagnosisPanel is a symptom checklist that asks the backend for the most
// likely condition.
type DiagnosisPanel struct {
	deps      Deps
	selection *clinical.Selection
	cursor    int
	tracker   *outcome.Tracker[api.DiagnosisResult]
}

func NewDiagnosisPanel(deps Deps) *DiagnosisPanel {
	names := deps.Symptoms
	if len(names) == 0 {
		names = clinical.DefaultSymptoms
	}
	return &DiagnosisPanel{
		deps:      deps,
		selection: clinical.NewSelection(names),
		tracker:   outcome.NewTracker[api.DiagnosisResult](deps.context()),
	}
}

func (p *DiagnosisPanel) ID() ID                { return Diagnosis }
func (p *DiagnosisPanel) Mount() tea.Cmd        { return nil }
func (p *DiagnosisPanel) Unmount()              { p.tracker.Close() }
func (p *DiagnosisPanel) Capturing() bool       { return false }
func (p *DiagnosisPanel) Status() outcome.State { return p.tracker.State() }

// Selection exposes the checklist for inspection.
func (p *DiagnosisPanel) Selection() *clinical.Selection { return p.selection }

// Outcome returns the current request outcome.
func (p *DiagnosisPanel) Outcome() outcome.Outcome[api.DiagnosisResult] {
	return p.tracker.Outcome()
}

func (p *DiagnosisPanel) Keybinds() []border.Keybind {
	return []border.Keybind{
		{Key: "j/k", Label: "move"},
		{Key: "space", Label: "toggle"},
		{Key: "enter", Label: "diagnose"},
	}
}

// ToggleSymptom flips one symptom.
func (p *DiagnosisPanel) ToggleSymptom(name string) {
	p.selection.Toggle(name)
}

// Submit sends the whole checklist. It returns nil while a request is
// already pending.
func (p *DiagnosisPanel) Submit() tea.Cmd {
	if p.tracker.Pending() {
		return nil
	}
	id, err := p.deps.Identity.Identity(p.deps.context())
	if err != nil {
		return alertCmd(diagnoseFailed, err.Error())
	}
	req := api.DiagnoseRequest{
		Symptoms:  p.selection.Map(),
		PatientID: id.PatientID,
		DoctorID:  id.DoctorID,
	}
	backend := p.deps.Backend
	return p.tracker.Submit(func(ctx context.Context) (api.DiagnosisResult, error) {
		return backend.Diagnose(ctx, req)
	})
}

func (p *DiagnosisPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case outcome.ResultMsg[api.DiagnosisResult]:
		if !p.tracker.Resolve(msg) {
			return p, nil
		}
		return p, failureAlert(diagnoseFailed, msg.Err)

	case tea.KeyMsg:
		names := p.selection.Names()
		switch msg.String() {
		case "j", "down":
			if p.cursor < len(names)-1 {
				p.cursor++
			}
		case "k", "up":
			if p.cursor > 0 {
				p.cursor--
			}
		case "g", "home":
			p.cursor = 0
		case "G", "end":
			p.cursor = max(len(names)-1, 0)
		case " ", "x":
			if p.cursor < len(names) {
				p.ToggleSymptom(names[p.cursor])
			}
		case "enter":
			return p, p.Submit()
		}
	}
	return p, nil
}

func (p *DiagnosisPanel) View(width int) string {
	var lines []string
	lines = append(lines, styles.SectionStyle.Render("Select Your Symptoms:"), "")

	for i, name := range p.selection.Names() {
		box := "[ ]"
		if p.selection.Checked(name) {
			box = styles.CheckedStyle.Render("[x]")
		}
		row := fmt.Sprintf("  %s %s", box, clinical.Label(name))
		if i == p.cursor {
			row = styles.CursorRowStyle.Render(text.PadRight("▸"+row[1:], width))
		}
		lines = append(lines, row)
	}

	lines = append(lines, "")
	out := p.tracker.Outcome()
	switch out.State {
	case outcome.Pending:
		lines = append(lines, styles.PendingStyle.Render("Analyzing..."))
	case outcome.Failed:
		lines = append(lines, styles.ErrorStyle.Render(diagnoseFailed))
	default:
		lines = append(lines, styles.TextDimStyle.Render("Press enter to diagnose symptoms"))
	}

	if out.State == outcome.Succeeded {
		res := out.Value
		lines = append(lines, "",
			styles.TitleStyle.Render("Diagnosis Results:"),
			styles.TextPrimaryStyle.Render("Disease: "+res.Disease),
			"Confidence: "+styles.ConfidenceStyle(res.Confidence).Render(text.FormatConfidence(res.Confidence)),
			styles.SectionStyle.Render("Symptoms Detected:"),
		)
		detected := make([]string, len(res.SymptomsDetected))
		for i, s := range res.SymptomsDetected {
			detected[i] = clinical.Label(s)
		}
		for _, b := range text.Bullets(detected) {
			lines = append(lines, "  "+b)
		}
		if p.deps.ShowDisclaimer {
			lines = append(lines, "")
			for _, l := range text.WrapText(diagnosisDisclaimer, width) {
				lines = append(lines, styles.DisclaimerStyle.Render(l))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// failureAlert raises the panel's alert for a failed request. Cancelled
// requests were abandoned on purpose and stay silent.
func failureAlert(title string, err error) tea.Cmd {
	if err == nil || api.KindOf(err) == api.KindCanceled {
		return nil
	}
	return alertCmd(title, api.Detail(err))
}
