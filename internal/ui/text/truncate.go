package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to maxWidth columns, ending in "…" when cut. ANSI
// sequences are not counted and never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// WrapText word-wraps s to width columns and returns one entry per line.
// Existing newlines are kept; words wider than width are truncated.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(s string, width int) []string {
	if ansi.StringWidth(s) <= width {
		return []string{s}
	}
	var (
		lines []string
		b     strings.Builder
		w     int
	)
	for _, word := range strings.Fields(s) {
		ww := ansi.StringWidth(word)
		if ww > width {
			word, ww = ansi.Truncate(word, width, "…"), width
		}
		switch {
		case w == 0:
		case w+1+ww <= width:
			b.WriteByte(' ')
			w++
		default:
			lines = append(lines, b.String())
			b.Reset()
			w = 0
		}
		b.WriteString(word)
		w += ww
	}
	if w > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// PadRight pads s with spaces to width columns. Wider strings are returned
// unchanged.
func PadRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
