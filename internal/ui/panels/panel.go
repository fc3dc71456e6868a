package panels

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/medintel/internal/api"
	"github.com/justinpbarnett/medintel/internal/auth"
	"github.com/justinpbarnett/medintel/internal/outcome"
	"github.com/justinpbarnett/medintel/internal/ui/border"
	"github.com/justinpbarnett/medintel/internal/ui/layout"
)

// ID selects one of the four panels. The zero value is the prescription
// panel, which is also the default.
type ID int

const (
	Prescription ID = iota
	Diagnosis
	Interaction
	Telemedicine
)

// IDs lists the panels in tab order.
var IDs = []ID{Prescription, Diagnosis, Interaction, Telemedicine}

func (id ID) String() string {
	switch id {
	case Diagnosis:
		return "diagnosis"
	case Interaction:
		return "interaction"
	case Telemedicine:
		return "telemedicine"
	default:
		return "prescription"
	}
}

// Title is the human label shown in the tab bar and frame.
func (id ID) Title() string {
	switch id {
	case Diagnosis:
		return "AI Diagnostic Assistant"
	case Interaction:
		return "Drug Interaction & Allergy Check"
	case Telemedicine:
		return "Telemedicine Integration"
	default:
		return "Upload Prescription"
	}
}

// Short is the compact tab label.
func (id ID) Short() string {
	switch id {
	case Diagnosis:
		return "Diagnosis"
	case Interaction:
		return "Interactions"
	case Telemedicine:
		return "Telemedicine"
	default:
		return "Prescription"
	}
}

// Next returns the panel after id in tab order, wrapping around.
func (id ID) Next() ID { return IDs[(int(id)+1)%len(IDs)] }

// Prev returns the panel before id in tab order, wrapping around.
func (id ID) Prev() ID { return IDs[(int(id)+len(IDs)-1)%len(IDs)] }

// ParseID maps a panel name back to its ID.
func ParseID(s string) (ID, error) {
	for _, id := range IDs {
		if id.String() == s {
			return id, nil
		}
	}
	return Prescription, fmt.Errorf("unknown panel %q", s)
}

// Backend is the subset of the API client the panels call.
type Backend interface {
	Diagnose(ctx context.Context, req api.DiagnoseRequest) (api.DiagnosisResult, error)
	CheckInteraction(ctx context.Context, req api.InteractionRequest) (api.InteractionResult, error)
	UploadPrescription(ctx context.Context, req api.UploadRequest) (api.PrescriptionResult, error)
}

// Deps are the collaborators shared by every panel instance.
type Deps struct {
	Ctx            context.Context
	Backend        Backend
	Identity       auth.Provider
	Symptoms       []string
	Clipboard      func(string) error
	ScrollLock     *layout.ScrollLock
	ShowDisclaimer bool
}

func (d Deps) context() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

// Panel is one mounted tab. The shell owns exactly one at a time: Mount is
// called once after construction and Unmount once before it is discarded.
type Panel interface {
	ID() ID
	Mount() tea.Cmd
	Unmount()
	Update(msg tea.Msg) (Panel, tea.Cmd)
	// View renders the full panel body wrapped to width. The shell crops
	// and scrolls it to fit the frame.
	View(width int) string
	Keybinds() []border.Keybind
	// Capturing reports whether printable keys should go to a text input.
	Capturing() bool
	Status() outcome.State
}

// New constructs a fresh, unmounted panel.
func New(id ID, deps Deps) Panel {
	switch id {
	case Diagnosis:
		return NewDiagnosisPanel(deps)
	case Interaction:
		return NewInteractionPanel(deps)
	case Telemedicine:
		return NewTelemedicinePanel()
	default:
		return NewPrescriptionPanel(deps)
	}
}
