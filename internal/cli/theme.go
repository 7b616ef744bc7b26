package cli

import "github.com/charmbracelet/lipgloss"

// Theme styles console output.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	OK       lipgloss.Style
	Fault    lipgloss.Style
	Header   lipgloss.Style
	Card     lipgloss.Style
}

// DefaultTheme is the colour scheme used on a terminal.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fault:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
