package theme

import (
	"github.com/charmbracelet/lipgloss"

	"sushitest/internal/domain"
)

// Report styles
var (
	ErrorLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	FailLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFail)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PassLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPass)

	SuiteTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// StatusLabel renders the fixed-width label printed in front of a case result
func StatusLabel(status domain.CaseStatus) string {
	switch status {
	case domain.CasePass:
		return PassLabelStyle.Render("PASS ")
	case domain.CaseFail:
		return FailLabelStyle.Render("FAIL ")
	default:
		return ErrorLabelStyle.Render("ERROR")
	}
}
