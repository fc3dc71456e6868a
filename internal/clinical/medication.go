package clinical

import "strings"

// ParseList splits a comma-delimited field into trimmed, non-empty entries,
// preserving their order. An input of only commas and whitespace yields nil.
func ParseList(raw string) []string {
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// MedicationQuery holds the raw text of the interaction form.
type MedicationQuery struct {
	Medications string
	Allergies   string
}

// Parse returns both fields as lists.
func (q MedicationQuery) Parse() (medications, allergies []string) {
	return ParseList(q.Medications), ParseList(q.Allergies)
}

// HasAllergies reports whether the allergy field contains any entry.
func (q MedicationQuery) HasAllergies() bool {
	return len(ParseList(q.Allergies)) > 0
}
