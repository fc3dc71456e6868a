package clinical

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewSelectionAllUnchecked(t *testing.T) {
	s := NewSelection(DefaultSymptoms)
	if s.Len() != len(DefaultSymptoms) {
		t.Fatalf("expected %d symptoms, got %d", len(DefaultSymptoms), s.Len())
	}
	for _, n := range DefaultSymptoms {
		if s.Checked(n) {
			t.Errorf("expected %q unchecked initially", n)
		}
	}
	if got := s.Selected(); len(got) != 0 {
		t.Errorf("expected no selected symptoms, got %v", got)
	}
}

func TestNewSelectionCollapsesDuplicates(t *testing.T) {
	s := NewSelection([]string{"fever", "cough", "fever"})
	if !reflect.DeepEqual(s.Names(), []string{"fever", "cough"}) {
		t.Errorf("unexpected names: %v", s.Names())
	}
}

func TestToggleFlipsOneEntry(t *testing.T) {
	s := NewSelection(DefaultSymptoms)
	if !s.Toggle("cough") {
		t.Error("expected first toggle to check cough")
	}
	if s.Toggle("cough") {
		t.Error("expected second toggle to uncheck cough")
	}
	s.Toggle("fever")
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"fever"}) {
		t.Errorf("expected [fever], got %v", got)
	}
}

func TestToggleUnknownKeepsShape(t *testing.T) {
	s := NewSelection(DefaultSymptoms)
	s.Toggle("hiccups")
	m := s.Map()
	if len(m) != len(DefaultSymptoms) {
		t.Fatalf("map shape changed: %d keys", len(m))
	}
	if _, ok := m["hiccups"]; ok {
		t.Error("unknown symptom leaked into the selection")
	}
}

// Every key ends up checked iff it was toggled an odd number of times,
// regardless of the order of the toggles.
func TestToggleParity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		s := NewSelection(DefaultSymptoms)
		counts := make(map[string]int)
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			name := DefaultSymptoms[rng.Intn(len(DefaultSymptoms))]
			counts[name]++
			s.Toggle(name)
		}
		for _, name := range DefaultSymptoms {
			want := counts[name]%2 == 1
			if s.Checked(name) != want {
				t.Fatalf("trial %d: %s checked=%v, toggled %d times", trial, name, s.Checked(name), counts[name])
			}
		}
	}
}

func TestMapIsCopy(t *testing.T) {
	s := NewSelection(DefaultSymptoms)
	m := s.Map()
	m["fever"] = true
	if s.Checked("fever") {
		t.Error("mutating Map() result must not change the selection")
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"fever":               "fever",
		"shortness_of_breath": "shortness of breath",
		"loss_of_taste":       "loss of taste",
	}
	for in, want := range tests {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}
