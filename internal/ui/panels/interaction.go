package panels

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/clinical"
	"github.com/justinpbarnett/medintel/internal/outcome"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/styles"
	"github.com/justinpbarnett/medintel/internal/ui/text"
)

const (
	interactionFailed     = "Error checking drug interactions. Please try again."
	noInteractionsNotice  = "No drug interactions found between these medications."
	noAllergyNotice       = "No allergy conflicts found with these medications."
	interactionDisclaimer = "Disclaimer: This tool provides information for educational purposes only. Always consult with a healthcare professional before making decisions about medication."
)

const (
	fieldMedications = iota
	fieldAllergies
)

// InteractionPanel checks a medication list against itself and against
// known allergies.
type InteractionPanel struct {
	deps    Deps
	inputs  [2]textinput.Model
	focus   int
	editing bool
	tracker *outcome.Tracker[api.InteractionResult]

	// whether the allergy field was non-empty on the last submit
	submittedAllergies bool
}

func NewInteractionPanel(deps Deps) *InteractionPanel {
	meds := textinput.New()
	meds.Prompt = "› "
	meds.Placeholder = "aspirin, warfarin, metformin"
	meds.Width = 56

	allergies := textinput.New()
	allergies.Prompt = "› "
	allergies.Placeholder = "penicillin, nsaids, sulfa"
	allergies.Width = 56

	return &InteractionPanel{
		deps:    deps,
		inputs:  [2]textinput.Model{meds, allergies},
		tracker: outcome.NewTracker[api.InteractionResult](deps.context()),
	}
}

func (p *InteractionPanel) ID() ID                { return Interaction }
func (p *InteractionPanel) Mount() tea.Cmd        { return nil }
func (p *InteractionPanel) Unmount()              { p.tracker.Close() }
func (p *InteractionPanel) Capturing() bool       { return p.editing }
func (p *InteractionPanel) Status() outcome.State { return p.tracker.State() }

func (p *InteractionPanel) Outcome() outcome.Outcome[api.InteractionResult] {
	return p.tracker.Outcome()
}

func (p *InteractionPanel) Keybinds() []border.Keybind {
	if p.editing {
		return []border.Keybind{
			{Key: "tab", Label: "next field"},
			{Key: "enter", Label: "check"},
			{Key: "esc", Label: "done"},
		}
	}
	return []border.Keybind{
		{Key: "i", Label: "edit"},
		{Key: "enter", Label: "check"},
	}
}

// Query returns the raw text of both fields.
func (p *InteractionPanel) Query() clinical.MedicationQuery {
	return clinical.MedicationQuery{
		Medications: p.inputs[fieldMedications].Value(),
		Allergies:   p.inputs[fieldAllergies].Value(),
	}
}

// SetQuery replaces the text of both fields.
func (p *InteractionPanel) SetQuery(q clinical.MedicationQuery) {
	p.inputs[fieldMedications].SetValue(q.Medications)
	p.inputs[fieldAllergies].SetValue(q.Allergies)
}

func (p *InteractionPanel) focusField(i int) {
	p.focus = i
	p.editing = true
	for j := range p.inputs {
		if j == i {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

func (p *InteractionPanel) blur() {
	p.editing = false
	for j := range p.inputs {
		p.inputs[j].Blur()
	}
}

// Submit sends both lists. An empty medication list is rejected with an
// alert and no request.
func (p *InteractionPanel) Submit() tea.Cmd {
	if p.tracker.Pending() {
		return nil
	}
	q := p.Query()
	meds, allergies := q.Parse()
	if len(meds) == 0 {
		err := &api.ValidationError{Field: "medications", Reason: "at least one medication is required"}
		return alertCmd(interactionFailed, err.Error())
	}
	hasAllergies := q.HasAllergies()
	req := api.InteractionRequest{Medications: meds, Allergies: allergies}
	backend := p.deps.Backend
	cmd := p.tracker.Submit(func(ctx context.Context) (api.InteractionResult, error) {
		return backend.CheckInteraction(ctx, req)
	})
	p.submittedAllergies = hasAllergies
	return cmd
}

func (p *InteractionPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case outcome.ResultMsg[api.InteractionResult]:
		if !p.tracker.Resolve(msg) {
			return p, nil
		}
		return p, failureAlert(interactionFailed, msg.Err)

	case tea.KeyMsg:
		if !p.editing {
			switch msg.String() {
			case "i", "tab":
				p.focusField(p.focus)
				return p, textinput.Blink
			case "enter":
				return p, p.Submit()
			}
			return p, nil
		}
		switch msg.String() {
		case "esc":
			p.blur()
			return p, nil
		case "tab", "down":
			p.focusField((p.focus + 1) % len(p.inputs))
			return p, nil
		case "shift+tab", "up":
			p.focusField((p.focus + len(p.inputs) - 1) % len(p.inputs))
			return p, nil
		case "enter":
			return p, p.Submit()
		}
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd
	}

	if p.editing {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *InteractionPanel) View(width int) string {
	lines := []string{
		styles.SectionStyle.Render("Medications"),
		p.inputs[fieldMedications].View(),
		"",
		styles.SectionStyle.Render("Known Allergies"),
		p.inputs[fieldAllergies].View(),
		"",
	}

	out := p.tracker.Outcome()
	switch out.State {
	case outcome.Pending:
		lines = append(lines, styles.PendingStyle.Render("Analyzing..."))
	case outcome.Failed:
		lines = append(lines, styles.ErrorStyle.Render(interactionFailed))
	default:
		lines = append(lines, styles.TextDimStyle.Render("Separate entries with commas, then press enter to check interactions"))
	}
	if out.State != outcome.Succeeded {
		return strings.Join(lines, "\n")
	}

	res := out.Value
	lines = append(lines, "", styles.TitleStyle.Render("Results:"), styles.SectionStyle.Render("Medications Checked:"))
	for _, b := range text.Bullets(res.MedicationsChecked) {
		lines = append(lines, "  "+styles.OKItemStyle.Render(b))
	}

	lines = append(lines, "")
	if len(res.DrugInteractions) == 0 {
		lines = append(lines, styles.OKItemStyle.Render(noInteractionsNotice))
	} else {
		lines = append(lines, styles.SectionStyle.Render("Potential Drug Interactions:"))
		for _, di := range res.DrugInteractions {
			lines = append(lines, "  "+styles.WarningItemStyle.Render("• "+di.Medication1+" + "+di.Medication2))
			for _, l := range text.WrapText(di.Warning, max(width-4, 1)) {
				lines = append(lines, "    "+l)
			}
			lines = append(lines, "    Severity: "+styles.SeverityStyle(di.Severity).Render(strings.ToUpper(di.Severity)))
		}
	}

	if len(res.AllergyWarnings) > 0 {
		lines = append(lines, "", styles.SectionStyle.Render("Allergy Warnings:"))
		for _, aw := range res.AllergyWarnings {
			lines = append(lines, "  "+styles.WarningItemStyle.Render("• Allergy: "+aw.Allergy+", Medication: "+aw.Medication))
			for _, l := range text.WrapText(aw.Warning, max(width-4, 1)) {
				lines = append(lines, "    "+l)
			}
			if aw.Severity != "" {
				lines = append(lines, "    Severity: "+styles.SeverityStyle(aw.Severity).Render(strings.ToUpper(aw.Severity)))
			}
		}
	} else if p.submittedAllergies {
		lines = append(lines, "", styles.OKItemStyle.Render(noAllergyNotice))
	}

	if p.deps.ShowDisclaimer {
		lines = append(lines, "")
		for _, l := range text.WrapText(interactionDisclaimer, width) {
			lines = append(lines, styles.DisclaimerStyle.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}
