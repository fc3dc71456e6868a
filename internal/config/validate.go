package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency. All checks run and
// every failure is reported.
func validate(cfg *Config) error {
	var errs []string

	u, err := url.Parse(cfg.Backend.URL)
	switch {
	case cfg.Backend.URL == "":
		errs = append(errs, "backend.url must be set")
	case err != nil:
		errs = append(errs, fmt.Sprintf("backend.url %q is not a valid URL: %v", cfg.Backend.URL, err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Sprintf("backend.url %q must use http or https", cfg.Backend.URL))
	case u.Host == "":
		errs = append(errs, fmt.Sprintf("backend.url %q has no host", cfg.Backend.URL))
	}

	if cfg.Backend.Timeout <= 0 {
		errs = append(errs, "backend.timeout must be positive")
	}
	if cfg.Auth.PatientID < 0 {
		errs = append(errs, "auth.patient_id must not be negative")
	}
	if cfg.Auth.DoctorID < 0 {
		errs = append(errs, "auth.doctor_id must not be negative")
	}

	if len(cfg.Diagnosis.Symptoms) == 0 {
		errs = append(errs, "diagnosis.symptoms must list at least one symptom")
	}
	seen := make(map[string]bool, len(cfg.Diagnosis.Symptoms))
	for i, s := range cfg.Diagnosis.Symptoms {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("diagnosis.symptoms[%d] is blank", i))
			continue
		}
		if seen[s] {
			errs = append(errs, fmt.Sprintf("diagnosis.symptoms[%d] %q is a duplicate", i, s))
		}
		seen[s] = true
	}

	known := false
	for _, name := range PanelNames {
		if cfg.UI.DefaultPanel == name {
			known = true
			break
		}
	}
	if !known {
		errs = append(errs, fmt.Sprintf("ui.default_panel %q must be one of %s", cfg.UI.DefaultPanel, strings.Join(PanelNames, ", ")))
	}

	if owner, name, ok := strings.Cut(cfg.Update.Repo, "/"); !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		errs = append(errs, fmt.Sprintf("update.repo %q must be of the form owner/name", cfg.Update.Repo))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Validate re-runs the checks, for callers that modify a loaded config.
func (c *Config) Validate() error {
	return validate(c)
}
