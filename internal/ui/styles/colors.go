package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors, AdaptiveColor{Light, Dark}.
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#1e40af", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1e3a8a", Dark: "#c0caf5"}
	KeybindKey      = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary     = lipgloss.AdaptiveColor{Light: "#334155", Dark: "#c0caf5"}
	TextSecondary   = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#565f89"}
	TextDim         = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#3b4261"}

	Brand       = lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#7dcfff"}
	BrandStrong = lipgloss.AdaptiveColor{Light: "#1e40af", Dark: "#7aa2f7"}

	StatusPending = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	StatusWarning = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	StatusIdle    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}

	ActiveTabBg = lipgloss.AdaptiveColor{Light: "#eff6ff", Dark: "#292e42"}
	CursorRowBg = lipgloss.AdaptiveColor{Light: "#e0f2fe", Dark: "#283457"}
)

// SeverityColor maps an interaction severity reported by the backend.
func SeverityColor(severity string) lipgloss.AdaptiveColor {
	switch severity {
	case "high", "HIGH", "severe":
		return StatusError
	case "moderate", "medium":
		return StatusWarning
	default:
		return TextPrimary
	}
}

// ConfidenceColor shades a diagnosis confidence percentage.
func ConfidenceColor(pct float64) lipgloss.AdaptiveColor {
	switch {
	case pct >= 75:
		return StatusSuccess
	case pct >= 40:
		return StatusWarning
	default:
		return StatusError
	}
}
