package config

import "github.com/justinpbarnett/medintel/internal/clinical"

func boolPtr(b bool) *bool { return &b }

// PanelNames lists the valid values of ui.default_panel in tab order.
var PanelNames = []string{"prescription", "diagnosis", "interaction", "telemedicine"}

func DefaultConfig() Config {
	symptoms := make([]string, len(clinical.DefaultSymptoms))
	copy(symptoms, clinical.DefaultSymptoms)

	return Config{
		Backend: BackendConfig{
			URL:         "http://localhost:5000",
			Timeout:     30,
			HealthCheck: boolPtr(true),
		},
		Auth: AuthConfig{
			TokenEnv: "MEDINTEL_TOKEN",
		},
		Diagnosis: DiagnosisConfig{
			Symptoms: symptoms,
		},
		UI: UIConfig{
			DefaultPanel:   "prescription",
			ShowDisclaimer: boolPtr(true),
		},
		Update: UpdateConfig{
			Repo: "justinpbarnett/medintel",
		},
	}
}
