package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/domain"
)

// ViewState contains all the state needed for rendering the page
type ViewState struct {
	Title    string
	Widget   string // rendered widget
	Selected domain.SelectionSet
	Help     string // rendered help line
}

// Renderer handles page rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// RenderHeader renders the page title
func (r *Renderer) RenderHeader(title string) string {
	return r.styles.Title.Render(title)
}

// WidgetOrigin returns the screen cell where the widget's top-left corner
// lands for the given title.
func (r *Renderer) WidgetOrigin(title string) (x, y int) {
	main := r.styles.Main
	x = main.GetMarginLeft() + main.GetBorderLeftSize() + main.GetPaddingLeft()
	y = main.GetMarginTop() + main.GetBorderTopSize() + main.GetPaddingTop() + lipgloss.Height(r.RenderHeader(title))
	return x, y
}

// Render produces the complete page. The widget must stay directly under the
// header so WidgetOrigin remains correct.
func (r *Renderer) Render(state ViewState) string {
	sections := []string{
		r.RenderHeader(state.Title),
		state.Widget,
		r.RenderSelected(state.Selected),
	}
	if state.Help != "" {
		sections = append(sections, r.styles.Help.Render(state.Help))
	}
	return r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderSelected renders the list of chosen options
func (r *Renderer) RenderSelected(selected domain.SelectionSet) string {
	content := &strings.Builder{}
	content.WriteString(r.styles.Heading.Render("Selected Values:"))
	if len(selected) == 0 {
		content.WriteString("\n" + r.styles.Dim.Render("  (none)"))
		return content.String()
	}
	for _, opt := range selected {
		line := fmt.Sprintf("  • %s %s", r.styles.Value.Render(opt.Label), r.styles.Key.Render("("+opt.Value+")"))
		content.WriteString("\n" + line)
	}
	return content.String()
}
