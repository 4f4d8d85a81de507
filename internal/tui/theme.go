package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the phosphor palette of the terminal skin.
type Theme struct {
	Primary lipgloss.AdaptiveColor
	Dim     lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor

	Prompt   lipgloss.Style
	Command  lipgloss.Style
	Output   lipgloss.Style
	Cursor   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Answer   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultTheme returns green-on-black styles, darker greens on light
// terminals.
func DefaultTheme() Theme {
	t := Theme{
		Primary: lipgloss.AdaptiveColor{Light: "#007A00", Dark: "#33FF00"},
		Dim:     lipgloss.AdaptiveColor{Light: "#4D7A4D", Dark: "#1A8000"},
		Accent:  lipgloss.AdaptiveColor{Light: "#A86800", Dark: "#FFB000"},
	}

	t.Prompt = lipgloss.NewStyle().Foreground(t.Dim)
	t.Command = lipgloss.NewStyle().Foreground(t.Primary)
	t.Output = lipgloss.NewStyle().Foreground(t.Primary).Faint(true)
	t.Cursor = lipgloss.NewStyle().Foreground(t.Primary).Blink(true)
	t.Title = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Dim)
	t.Selected = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Answer = lipgloss.NewStyle().Foreground(t.Primary).Faint(true)
	t.Help = lipgloss.NewStyle().Foreground(t.Dim)
	return t
}
