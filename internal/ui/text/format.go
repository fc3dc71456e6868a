package text

import (
	"fmt"
	"strings"
)

// FormatConfidence renders a 0-100 confidence as "87.5%", dropping a
// trailing ".0".
func FormatConfidence(pct float64) string {
	s := fmt.Sprintf("%.1f", pct)
	return strings.TrimSuffix(s, ".0") + "%"
}

// Bullets prefixes each item with "• ". Empty input yields nil.
func Bullets(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "• " + it
	}
	return out
}
