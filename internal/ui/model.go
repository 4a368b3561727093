package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/pointer"
	"multiselect/internal/ui/multiselect"
	"multiselect/internal/ui/views"
)

// pageKeys are handled by the page before the widget sees a key
type pageKeys struct {
	Focus key.Binding
	Blur  key.Binding
	Quit  key.Binding

	widget multiselect.KeyMap
}

func newPageKeys(widget multiselect.KeyMap) pageKeys {
	return pageKeys{
		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus search")),
		Blur:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		widget: widget,
	}
}

func (k pageKeys) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.Focus, k.Blur, k.Quit)
}

func (k pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the demo page. It owns the selection and hands it to the widget
// through the SelectionStore methods.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	selected domain.SelectionSet

	widget   *multiselect.Model
	pointers *pointer.Dispatcher
	renderer *views.Renderer
	keys     pageKeys
	help     help.Model

	width  int
	height int
	ready  bool
}

// NewModel creates the page for cfg. bus may be nil.
func NewModel(cfg *config.Config, bus eventbus.EventBus) *Model {
	m := &Model{
		bus:      bus,
		config:   cfg,
		pointers: pointer.NewDispatcher(),
		renderer: views.NewRenderer(),
		help:     help.New(),
	}

	m.widget = multiselect.New(cfg.Options, m,
		multiselect.WithLabel(cfg.Label),
		multiselect.WithPlaceholder(cfg.Placeholder),
		multiselect.WithWidth(cfg.Width),
		multiselect.WithMaxVisible(cfg.MaxVisible),
		multiselect.WithOnOpenChange(func(open bool) {
			m.publish(eventbus.DropdownToggledEvent{Open: open})
		}),
	)
	m.widget.SetOrigin(m.renderer.WidgetOrigin(cfg.Title))
	m.keys = newPageKeys(m.widget.KeyMap())

	return m
}

// Selected implements multiselect.SelectionStore
func (m *Model) Selected() domain.SelectionSet {
	return m.selected
}

// SetSelected implements multiselect.SelectionStore
func (m *Model) SetSelected(next domain.SelectionSet) {
	added, removed := m.selected.Diff(next)
	m.selected = next
	m.publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(next),
	})
}

// Widget exposes the embedded widget
func (m *Model) Widget() *multiselect.Model {
	return m.widget
}

// Pointers exposes the page-wide pointer dispatcher
func (m *Model) Pointers() *pointer.Dispatcher {
	return m.pointers
}

// Init mounts the widget
func (m *Model) Init() tea.Cmd {
	m.widget.Mount(m.pointers)
	return nil
}

// Close unmounts the widget. Safe to call more than once.
func (m *Model) Close() {
	m.widget.Unmount()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.ready = true
			m.publish(eventbus.AppReadyEvent{})
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			log.Printf("Quit requested")
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Blur):
			m.widget.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			return m, m.widget.Focus()
		}
		return m, m.widget.Update(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.pointers.Dispatch(pointer.Event{X: msg.X, Y: msg.Y})
		}
		return m, m.widget.Update(msg)
	}

	return m, m.widget.Update(msg)
}

// View renders the page
func (m *Model) View() string {
	m.widget.SetOrigin(m.renderer.WidgetOrigin(m.config.Title))
	return m.renderer.Render(views.ViewState{
		Title:    m.config.Title,
		Widget:   m.widget.View(),
		Selected: m.selected,
		Help:     m.help.View(m.keys),
	})
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(event)
}
