package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	OKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000"))
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Mark renders a check or cross for ok.
func Mark(ok bool) string {
	if ok {
		return OKStyle.Render("✓")
	}
	return ErrorStyle.Render("✗")
}
