package layout

// Layout holds the computed sizes of the shell regions: a one-row tab bar,
// the framed panel body and a one-row status bar.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	TabBarWidth int

	BodyWidth  int
	BodyHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 60
	MinHeight = 16

	TabBarHeight    = 1
	StatusBarHeight = 1
)

// Calculate computes region sizes from the terminal size. TooSmall is set
// and all region sizes left zero when under the minimum.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}
	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	l.TabBarWidth = termWidth
	l.BodyWidth = termWidth
	l.BodyHeight = termHeight - TabBarHeight - StatusBarHeight
	l.StatusBarWidth = termWidth
	return l
}

// ModalWidth sizes an overlay to a fraction of the terminal, clamped to
// [minW, maxW] and never wider than the terminal.
func ModalWidth(termWidth, minW, maxW int) int {
	w := termWidth * 3 / 5
	w = max(w, minW)
	w = min(w, maxW)
	return min(w, termWidth)
}
