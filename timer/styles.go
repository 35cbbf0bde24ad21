package timer

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles of the session screen.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Focus     lipgloss.Style
	Rest      lipgloss.Style
	Paused    lipgloss.Style
	Completed lipgloss.Style
	Main      lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyle returns the screen styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	fg := lipgloss.Color("235")
	muted := lipgloss.Color("244")

	if dark {
		fg = lipgloss.Color("255")
		muted = lipgloss.Color("241")
	}

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("235")).
		Padding(0, 1).
		MarginRight(1)

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(fg),
		Focus:     badge.Background(lipgloss.Color("#B0DB43")),
		Rest:      badge.Background(lipgloss.Color("#12EAEA")),
		Paused:    badge.Background(lipgloss.Color("#F2C14E")),
		Completed: badge.Background(lipgloss.Color("#C492B1")),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
