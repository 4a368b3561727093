package multiselect

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the widget.
//
// Control, ControlFocused and Dropdown must keep the same frame size
// (border plus padding); hit testing derives cell positions from them.
type Styles struct {
	Label             lipgloss.Style
	Control           lipgloss.Style
	ControlFocused    lipgloss.Style
	Chip              lipgloss.Style
	Placeholder       lipgloss.Style
	Dropdown          lipgloss.Style
	Option            lipgloss.Style
	SelectedOption    lipgloss.Style
	HighlightedOption lipgloss.Style
	Check             lipgloss.Style
	Empty             lipgloss.Style
}

// DefaultStyles returns the indigo look of the widget
func DefaultStyles() Styles {
	control := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Styles{
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Control:        control,
		ControlFocused: control.BorderForeground(lipgloss.Color("99")),
		Chip: lipgloss.NewStyle().
			Background(lipgloss.Color("54")).
			Foreground(lipgloss.Color("189")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Option:            lipgloss.NewStyle(),
		SelectedOption:    lipgloss.NewStyle().Foreground(lipgloss.Color("147")),
		HighlightedOption: lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(lipgloss.Color("231")),
		Check:             lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Empty:             lipgloss.NewStyle().Faint(true),
	}
}
