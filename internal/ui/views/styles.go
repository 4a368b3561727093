package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the demo page
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Value   lipgloss.Style
	Key     lipgloss.Style
	Dim     lipgloss.Style
	Help    lipgloss.Style
	Main    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("189")),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Help:  lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:  lipgloss.NewStyle().Padding(1, 2),
	}
}
