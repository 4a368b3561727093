package multiselect

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

func plain(m *Model) string {
	return ansi.Strip(m.View())
}

func TestViewClosed(t *testing.T) {
	m, _ := newWidget(t)
	out := plain(m)

	assert.Contains(t, out, "Choose Options")
	assert.Contains(t, out, "Select...")
	assert.NotContains(t, out, "Option 1")
	assert.Equal(t, 4, lipgloss.Height(m.View()))
	assert.Equal(t, 40, lipgloss.Width(m.View()))
}

func TestViewOpenListsOptions(t *testing.T) {
	m, _ := newWidget(t)
	m.ToggleDropdown()
	out := plain(m)

	for i := 1; i <= 4; i++ {
		assert.Contains(t, out, fmt.Sprintf("Option %d", i))
	}
	assert.NotContains(t, out, checkMark)
	assert.Equal(t, 10, lipgloss.Height(m.View()))
}

func TestViewEmptyFilter(t *testing.T) {
	m, _ := newWidget(t)
	m.ToggleDropdown()
	m.SetSearchTerm("zzz")

	out := plain(m)
	assert.Contains(t, out, "No options found")
	assert.NotContains(t, out, "Option 1")
}

func TestViewChipsAndCheckmarks(t *testing.T) {
	m, _ := newWidget(t)
	opts := fourOptions()
	m.Select(opts[2])

	out := plain(m)
	assert.Contains(t, out, "Option 3 ×")
	assert.NotContains(t, out, "Select...", "placeholder only shows while nothing is selected")

	lines := strings.Split(out, "\n")
	var checked []string
	for _, line := range lines {
		if strings.Contains(line, checkMark) {
			checked = append(checked, line)
		}
	}
	require.Len(t, checked, 1)
	assert.Contains(t, checked[0], "Option 3")
}

func TestChipRemoveZone(t *testing.T) {
	m, store := newWidget(t)
	opts := fourOptions()
	m.Select(opts[2])
	m.Select(opts[0])
	m.ToggleDropdown() // close

	// " Option 3 × " starts at column 2 of row 2, its mark is at column 12
	m.Update(press(12, 2))
	assert.Equal(t, []string{"option1"}, store.set.Values())
	assert.False(t, m.IsOpen(), "chip removal does not toggle the dropdown")
}

func TestClickingRowTogglesOption(t *testing.T) {
	m, store := newWidget(t)
	m.ToggleDropdown()

	m.Update(press(10, 7)) // third row
	assert.Equal(t, []string{"option3"}, store.set.Values())
	assert.True(t, m.IsOpen())

	m.Update(press(10, 7))
	assert.Empty(t, store.set)
}

func TestClickingLabelDoesNothing(t *testing.T) {
	m, store := newWidget(t)
	m.Update(press(1, 0))
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, store.calls)
}

func TestChipsWrap(t *testing.T) {
	m, store := newWidget(t, WithWidth(24))
	for _, opt := range fourOptions() {
		m.Select(opt)
	}
	m.ToggleDropdown() // close

	// Each chip is 12 cells wide and only one fits per 20-cell line,
	// then the search field takes its own line
	assert.Equal(t, 1+2+4+1, lipgloss.Height(m.View()))

	// The third chip sits on the third content line
	m.Update(press(12, 4))
	assert.Equal(t, []string{"option1", "option2", "option4"}, store.set.Values())
}

func TestDropdownScrollsToHighlight(t *testing.T) {
	var opts domain.OptionList
	for i := 1; i <= 8; i++ {
		opts = append(opts, domain.Option{Value: fmt.Sprintf("v%d", i), Label: fmt.Sprintf("Item %d", i)})
	}
	store := &memStore{}
	m := New(opts, store, WithMaxVisible(3))
	m.Focus()

	for i := 0; i < 4; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, 4, m.Highlighted())

	out := plain(m)
	assert.NotContains(t, out, "Item 1")
	assert.Contains(t, out, "Item 3")
	assert.Contains(t, out, "Item 5")
	assert.NotContains(t, out, "Item 6")

	// Rows map to filtered indexes through the scroll offset
	m.Update(press(5, 5))
	assert.Equal(t, []string{"v3"}, store.set.Values())
}

func TestLongLabelsAreTruncated(t *testing.T) {
	store := &memStore{}
	m := New(domain.OptionList{{Value: "long", Label: strings.Repeat("x", 80)}}, store, WithWidth(30))
	m.ToggleDropdown()
	m.Select(domain.Option{Value: "long", Label: strings.Repeat("x", 80)})

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
	assert.Contains(t, plain(m), ellipsis)
}
