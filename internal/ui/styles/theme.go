package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SectionStyle       = lipgloss.NewStyle().Foreground(TextSecondary).Bold(true)

	LogoLeftStyle  = lipgloss.NewStyle().Foreground(Brand).Bold(true)
	LogoRightStyle = lipgloss.NewStyle().Foreground(BrandStrong).Bold(true)

	ActiveTabStyle   = lipgloss.NewStyle().Foreground(Brand).Background(ActiveTabBg).Bold(true).Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(TextSecondary).Padding(0, 1)

	CursorRowStyle = lipgloss.NewStyle().Background(CursorRowBg)
	CheckedStyle   = lipgloss.NewStyle().Foreground(StatusSuccess).Bold(true)

	WarningItemStyle = lipgloss.NewStyle().Foreground(StatusError)
	OKItemStyle      = lipgloss.NewStyle().Foreground(StatusSuccess)
	ErrorStyle       = lipgloss.NewStyle().Foreground(StatusError).Bold(true)
	PendingStyle     = lipgloss.NewStyle().Foreground(StatusPending)
	DisclaimerStyle  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// ConfidenceStyle colors a diagnosis confidence figure.
func ConfidenceStyle(pct float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ConfidenceColor(pct)).Bold(true)
}

// SeverityStyle colors an interaction severity label.
func SeverityStyle(severity string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(severity)).Bold(true)
}
