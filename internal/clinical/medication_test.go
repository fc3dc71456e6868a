package clinical

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"trims and drops empties", "aspirin, warfarin ,, metformin", []string{"aspirin", "warfarin", "metformin"}},
		{"empty", "", nil},
		{"only separators", " , , ", nil},
		{"single", "ibuprofen", []string{"ibuprofen"}},
		{"keeps inner spaces", " iodinated contrast media ,x", []string{"iodinated contrast media", "x"}},
		{"keeps order and duplicates", "b,a,b", []string{"b", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMedicationQueryParse(t *testing.T) {
	q := MedicationQuery{Medications: "aspirin,warfarin", Allergies: " nsaids "}
	meds, allergies := q.Parse()
	if !reflect.DeepEqual(meds, []string{"aspirin", "warfarin"}) {
		t.Errorf("medications: got %v", meds)
	}
	if !reflect.DeepEqual(allergies, []string{"nsaids"}) {
		t.Errorf("allergies: got %v", allergies)
	}
	if !q.HasAllergies() {
		t.Error("expected HasAllergies")
	}
	if (MedicationQuery{Allergies: " , "}).HasAllergies() {
		t.Error("separator-only allergy field should count as empty")
	}
}
