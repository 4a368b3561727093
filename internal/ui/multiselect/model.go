// Package multiselect implements a dropdown multi-selection widget for
// Bubble Tea programs.
//
// The widget renders a control box holding one removable chip per selected
// option followed by a search field, and, while open, a dropdown listing the
// options whose label matches the search text. The selection itself belongs
// to the caller and is read and replaced through a SelectionStore.
package multiselect

import (
	"log"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/domain"
	"multiselect/internal/pointer"
)

const (
	defaultLabel       = "Choose Options"
	defaultPlaceholder = "Select..."
	defaultWidth       = 40
	defaultMaxVisible  = 5

	// MinWidth is the narrowest control box the widget will draw
	MinWidth = 16
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// SelectionStore is the caller-owned selection. SetSelected is called
// synchronously with a new set on every change.
type SelectionStore interface {
	Selected() domain.SelectionSet
	SetSelected(domain.SelectionSet)
}

// refocusMsg restores search focus once the event that caused a selection
// has been fully handled.
type refocusMsg struct {
	id int
}

// ModelOption configures a Model
type ModelOption func(*Model)

// WithLabel sets the caption drawn above the control. Empty hides it.
func WithLabel(label string) ModelOption {
	return func(m *Model) { m.label = label }
}

// WithPlaceholder sets the search placeholder shown while nothing is selected
func WithPlaceholder(placeholder string) ModelOption {
	return func(m *Model) { m.placeholder = placeholder }
}

// WithWidth sets the outer width of the control box and dropdown
func WithWidth(width int) ModelOption {
	return func(m *Model) {
		if width < MinWidth {
			width = MinWidth
		}
		m.width = width
	}
}

// WithMaxVisible sets how many dropdown rows are shown before scrolling
func WithMaxVisible(n int) ModelOption {
	return func(m *Model) {
		if n < 1 {
			n = 1
		}
		m.maxVisible = n
	}
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(keys KeyMap) ModelOption {
	return func(m *Model) { m.keys = keys }
}

// WithStyles replaces the default styles
func WithStyles(styles Styles) ModelOption {
	return func(m *Model) { m.styles = styles }
}

// WithOnOpenChange registers a callback run whenever the dropdown opens or
// closes.
func WithOnOpenChange(fn func(open bool)) ModelOption {
	return func(m *Model) { m.onOpenChange = fn }
}

// Model is the widget state. It must be used through a pointer: the
// outside-click listener installed by Mount refers back to it.
type Model struct {
	id      int
	options domain.OptionList
	store   SelectionStore

	// Interaction state
	open        bool
	searchTerm  string
	highlighted int // index into Filtered()
	offset      int // first visible dropdown row
	search      textinput.Model

	// Placement
	originX, originY int
	reg              *pointer.Registration

	// Settings
	label        string
	placeholder  string
	width        int
	maxVisible   int
	keys         KeyMap
	styles       Styles
	onOpenChange func(bool)
}

// New creates a closed widget over options
func New(options domain.OptionList, store SelectionStore, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Prompt = "" // The control box draws its own frame

	m := &Model{
		id:          nextID(),
		options:     options,
		store:       store,
		search:      ti,
		label:       defaultLabel,
		placeholder: defaultPlaceholder,
		width:       defaultWidth,
		maxVisible:  defaultMaxVisible,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.search.PlaceholderStyle = m.styles.Placeholder
	// Widest the field can get; the control line trims it when chips share the line
	m.search.Width = m.width - m.styles.Control.GetHorizontalFrameSize() - 1
	if m.search.Width < 1 {
		m.search.Width = 1
	}
	return m
}

// Mount attaches the outside-click listener to d. Mounting an already
// mounted widget does nothing.
func (m *Model) Mount(d *pointer.Dispatcher) {
	if m.reg != nil {
		return
	}
	m.reg = d.Listen(m.handlePointerDown)
	log.Printf("multiselect %d: mounted", m.id)
}

// Unmount detaches the outside-click listener. Safe to call repeatedly.
func (m *Model) Unmount() {
	if m.reg == nil {
		return
	}
	m.reg.Release()
	m.reg = nil
	log.Printf("multiselect %d: unmounted", m.id)
}

// Mounted reports whether the outside-click listener is attached
func (m *Model) Mounted() bool {
	return m.reg != nil
}

// SetOrigin places the widget's top-left cell in screen coordinates
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetOptions replaces the option list
func (m *Model) SetOptions(options domain.OptionList) {
	m.options = options
	m.clampHighlight()
}

// Update handles keyboard, mouse and internal messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refocusMsg:
		if msg.id != m.id {
			return nil
		}
		return m.Focus()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blinks and the like
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

// ToggleDropdown flips the dropdown. Opening also focuses the search field.
func (m *Model) ToggleDropdown() tea.Cmd {
	if m.open {
		m.setOpen(false)
		return nil
	}
	m.setOpen(true)
	return m.Focus()
}

// Focus gives the search field keyboard focus, which opens the dropdown
func (m *Model) Focus() tea.Cmd {
	if !m.search.Focused() {
		m.setOpen(true)
	}
	return m.search.Focus()
}

// Blur drops keyboard focus. The dropdown stays as it is.
func (m *Model) Blur() {
	m.search.Blur()
}

// Select toggles opt in the selection, clears the search and keeps the
// dropdown open. The returned command restores search focus on the next tick.
func (m *Model) Select(opt domain.Option) tea.Cmd {
	current := m.store.Selected()
	next := current.Toggle(opt)
	if current.Contains(opt.Value) {
		log.Printf("multiselect %d: deselected %q", m.id, opt.Value)
	} else {
		log.Printf("multiselect %d: selected %q", m.id, opt.Value)
	}
	m.store.SetSelected(next)

	m.search.Reset()
	m.setSearchTerm("")
	m.setOpen(true)

	id := m.id
	return func() tea.Msg { return refocusMsg{id: id} }
}

// Remove drops value from the selection without touching the dropdown.
// Values that are not selected are ignored.
func (m *Model) Remove(value string) {
	current := m.store.Selected()
	if !current.Contains(value) {
		return
	}
	log.Printf("multiselect %d: removed %q", m.id, value)
	m.store.SetSelected(current.Remove(value))
}

// SetSearchTerm replaces the search text
func (m *Model) SetSearchTerm(term string) {
	m.search.SetValue(term)
	m.setSearchTerm(term)
}

// IsOpen reports whether the dropdown is visible
func (m *Model) IsOpen() bool { return m.open }

// SearchTerm returns the current filter text
func (m *Model) SearchTerm() string { return m.searchTerm }

// Highlighted returns the keyboard highlight as an index into Filtered
func (m *Model) Highlighted() int { return m.highlighted }

// Focused reports whether the search field has keyboard focus
func (m *Model) Focused() bool { return m.search.Focused() }

// KeyMap returns the active key bindings
func (m *Model) KeyMap() KeyMap { return m.keys }

// Filtered returns the options matching the search text
func (m *Model) Filtered() domain.OptionList {
	return m.options.Filter(m.searchTerm)
}

// Contains reports whether the screen cell (x, y) lies on the widget,
// dropdown included.
func (m *Model) Contains(x, y int) bool {
	f := m.layout()
	rx, ry := x-m.originX, y-m.originY
	return rx >= 0 && ry >= 0 && rx < f.width && ry < f.height
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.search.Focused() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveHighlight(1)
		return nil
	case key.Matches(msg, m.keys.Up):
		m.moveHighlight(-1)
		return nil
	case key.Matches(msg, m.keys.Select):
		filtered := m.Filtered()
		if m.highlighted >= 0 && m.highlighted < len(filtered) {
			return m.Select(filtered[m.highlighted])
		}
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.searchTerm {
		m.setSearchTerm(v)
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X-m.originX, msg.Y-m.originY

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelUp:
		if z, ok := m.layout().hit(x, y); ok && (z.kind == zoneOption || z.kind == zoneDropdown) {
			if msg.Button == tea.MouseButtonWheelDown {
				m.scroll(1)
			} else {
				m.scroll(-1)
			}
		}
		return nil
	default:
		return nil
	}

	z, ok := m.layout().hit(x, y)
	if !ok {
		return nil
	}

	switch z.kind {
	case zoneChipRemove:
		selected := m.store.Selected()
		if z.index < len(selected) {
			m.Remove(selected[z.index].Value)
		}
	case zoneOption:
		// The press lands on the row, so the search field loses focus
		m.search.Blur()
		filtered := m.Filtered()
		if z.index < len(filtered) {
			return m.Select(filtered[z.index])
		}
	case zoneControl:
		return m.ToggleDropdown()
	}
	return nil
}

// handlePointerDown is the program-wide press listener installed by Mount
func (m *Model) handlePointerDown(ev pointer.Event) {
	if m.Contains(ev.X, ev.Y) {
		return
	}
	m.search.Blur()
	m.setOpen(false)
}

func (m *Model) setOpen(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	if open {
		log.Printf("multiselect %d: dropdown opened", m.id)
	} else {
		log.Printf("multiselect %d: dropdown closed", m.id)
	}
	if m.onOpenChange != nil {
		m.onOpenChange(open)
	}
}

func (m *Model) setSearchTerm(term string) {
	m.searchTerm = term
	m.clampHighlight()
}

func (m *Model) moveHighlight(delta int) {
	n := len(m.Filtered())
	if n == 0 {
		return
	}
	m.highlighted = ((m.highlighted+delta)%n + n) % n
	m.ensureVisible(n)
}

func (m *Model) clampHighlight() {
	n := len(m.Filtered())
	if n == 0 {
		m.highlighted = 0
		m.offset = 0
		return
	}
	if m.highlighted >= n {
		m.highlighted = n - 1
	}
	if m.highlighted < 0 {
		m.highlighted = 0
	}
	m.ensureVisible(n)
}

func (m *Model) ensureVisible(n int) {
	if m.highlighted < m.offset {
		m.offset = m.highlighted
	}
	if m.highlighted >= m.offset+m.maxVisible {
		m.offset = m.highlighted - m.maxVisible + 1
	}
	m.clampOffset(n)
}

func (m *Model) scroll(delta int) {
	m.offset += delta
	m.clampOffset(len(m.Filtered()))
}

func (m *Model) clampOffset(n int) {
	maxOffset := n - m.maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
