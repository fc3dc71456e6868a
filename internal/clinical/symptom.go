package clinical

import "strings"

// DefaultSymptoms is the closed symptom set understood by the diagnosis
// endpoint, in display order.
var DefaultSymptoms = []string{
	"fever",
	"cough",
	"fatigue",
	"shortness_of_breath",
	"headache",
	"sore_throat",
	"body_ache",
	"nausea",
	"diarrhea",
	"loss_of_taste",
}

// Selection tracks which symptoms of a fixed set are checked. The key set
// is fixed at construction; toggling an unknown name is a no-op.
type Selection struct {
	names   []string
	checked map[string]bool
}

// NewSelection returns a selection over names with every entry unchecked.
// Duplicate names collapse to their first occurrence.
func NewSelection(names []string) *Selection {
	s := &Selection{checked: make(map[string]bool, len(names))}
	for _, n := range names {
		if _, dup := s.checked[n]; dup {
			continue
		}
		s.names = append(s.names, n)
		s.checked[n] = false
	}
	return s
}

// Toggle flips the entry for name and reports its new value.
func (s *Selection) Toggle(name string) bool {
	v, ok := s.checked[name]
	if !ok {
		return false
	}
	s.checked[name] = !v
	return !v
}

func (s *Selection) Checked(name string) bool {
	return s.checked[name]
}

// Names returns the symptom keys in display order.
func (s *Selection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Selected returns the checked keys in display order.
func (s *Selection) Selected() []string {
	var out []string
	for _, n := range s.names {
		if s.checked[n] {
			out = append(out, n)
		}
	}
	return out
}

// Map returns a copy of the full mapping, suitable for a request body.
func (s *Selection) Map() map[string]bool {
	out := make(map[string]bool, len(s.checked))
	for k, v := range s.checked {
		out[k] = v
	}
	return out
}

func (s *Selection) Len() int { return len(s.names) }

// Label turns a symptom key into its display form: "sore_throat" -> "sore throat".
func Label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
