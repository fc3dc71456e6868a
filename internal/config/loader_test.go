package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/justinpbarnett/medintel/internal/clinical"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Backend.URL != "http://localhost:5000" {
		t.Errorf("expected default backend url, got %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.Backend.Timeout)
	}
	if cfg.UI.DefaultPanel != "prescription" {
		t.Errorf("expected default panel prescription, got %q", cfg.UI.DefaultPanel)
	}
	if !reflect.DeepEqual(cfg.Diagnosis.Symptoms, clinical.DefaultSymptoms) {
		t.Errorf("expected default symptoms, got %v", cfg.Diagnosis.Symptoms)
	}
	if cfg.Auth.PatientID != 0 || cfg.Auth.DoctorID != 0 {
		t.Error("identity must not default to placeholder ids")
	}
	if cfg.Backend.HealthCheck == nil || !*cfg.Backend.HealthCheck {
		t.Error("expected health check enabled by default")
	}
}

func TestDefaultSymptomsAreCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Diagnosis.Symptoms[0] = "mutated"
	if clinical.DefaultSymptoms[0] == "mutated" {
		t.Fatal("DefaultConfig must not alias clinical.DefaultSymptoms")
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "medintel.yaml"), `
backend:
  url: https://medintel.example.org
  timeout: 5
auth:
  patient_id: 12
  doctor_id: 3
ui:
  default_panel: diagnosis
  show_disclaimer: false
`)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "https://medintel.example.org" || cfg.Backend.Timeout != 5 {
		t.Errorf("unexpected backend %+v", cfg.Backend)
	}
	if cfg.Auth.PatientID != 12 || cfg.Auth.DoctorID != 3 {
		t.Errorf("unexpected auth %+v", cfg.Auth)
	}
	if cfg.UI.DefaultPanel != "diagnosis" {
		t.Errorf("expected diagnosis panel, got %q", cfg.UI.DefaultPanel)
	}
	if cfg.UI.ShowDisclaimer == nil || *cfg.UI.ShowDisclaimer {
		t.Error("expected show_disclaimer false")
	}
	if len(cfg.Diagnosis.Symptoms) != len(clinical.DefaultSymptoms) {
		t.Error("unset symptoms should keep defaults")
	}
}

func TestLoadFromTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "medintel.toml"), `
[backend]
url = "http://10.0.0.5:5000"

[diagnosis]
symptoms = ["fever", "cough", "rash"]
`)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://10.0.0.5:5000" {
		t.Errorf("unexpected url %q", cfg.Backend.URL)
	}
	if !reflect.DeepEqual(cfg.Diagnosis.Symptoms, []string{"fever", "cough", "rash"}) {
		t.Errorf("unexpected symptoms %v", cfg.Diagnosis.Symptoms)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	path := filepath.Join(tmp, "custom.yml")
	writeFile(t, path, "backend:\n  timeout: 9\n")

	cfg, err := load(tmp, path)
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}
	if cfg.Backend.Timeout != 9 {
		t.Errorf("expected timeout 9, got %d", cfg.Backend.Timeout)
	}
}

func TestLoadBadYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "medintel.yaml"), "backend: [unclosed")

	if _, err := LoadFrom(tmp); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDotEnvAndEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".env"), strings.Join([]string{
		"MEDINTEL_BACKEND_URL=http://dotenv:5000",
		"MEDINTEL_PATIENT_ID=5",
		"MEDINTEL_DOCTOR_ID=6",
		"MEDINTEL_TOKEN=from-dotenv",
	}, "\n"))
	t.Setenv("MEDINTEL_DOCTOR_ID", "8")
	t.Setenv("MEDINTEL_DEFAULT_PANEL", "interaction")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://dotenv:5000" {
		t.Errorf("expected .env url, got %q", cfg.Backend.URL)
	}
	if cfg.Auth.PatientID != 5 {
		t.Errorf("expected patient 5 from .env, got %d", cfg.Auth.PatientID)
	}
	if cfg.Auth.DoctorID != 8 {
		t.Errorf("process env must win over .env, got doctor %d", cfg.Auth.DoctorID)
	}
	if cfg.UI.DefaultPanel != "interaction" {
		t.Errorf("expected interaction panel, got %q", cfg.UI.DefaultPanel)
	}
	if cfg.Auth.Token != "from-dotenv" {
		t.Errorf("expected token from .env, got %q", cfg.Auth.Token)
	}
	if _, set := os.LookupEnv("MEDINTEL_BACKEND_URL"); set {
		t.Error(".env values must not leak into the process environment")
	}
}

func TestInvalidEnvNumberIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MEDINTEL_TIMEOUT", "soon")

	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.Timeout != 30 {
		t.Errorf("expected default timeout to survive bad env, got %d", cfg.Backend.Timeout)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "medintel.yaml"), "ui:\n  default_panel: records\n")

	_, err := LoadFrom(tmp)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestMergePreservesDefaults(t *testing.T) {
	base := DefaultConfig()
	merge(&base, &Config{Auth: AuthConfig{PatientID: 4}})

	if base.Auth.PatientID != 4 {
		t.Errorf("expected patient 4, got %d", base.Auth.PatientID)
	}
	if base.Backend.URL != "http://localhost:5000" {
		t.Error("merge clobbered backend url")
	}
	if base.Auth.TokenEnv != "MEDINTEL_TOKEN" {
		t.Error("merge clobbered token env")
	}
}
