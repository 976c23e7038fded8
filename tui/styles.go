package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("220")
	colorMuted  = lipgloss.Color("241")
	colorError  = lipgloss.Color("203")
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title       lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Section     lipgloss.Style
	Placeholder lipgloss.Style
	Error       lipgloss.Style
	Spinner     lipgloss.Style
	Crawl       lipgloss.Style
}

// DefaultStyles returns the styles used when none are configured.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		Button: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent),
		ButtonBusy: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Foreground(colorMuted),
		Section:     lipgloss.NewStyle().MarginTop(1),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Spinner:     lipgloss.NewStyle().Foreground(colorAccent),
		Crawl: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorAccent).
			PaddingLeft(1),
	}
}
