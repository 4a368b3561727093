package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventDropdownToggled  EventType = "DropdownToggled"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted whenever the selection set is replaced
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DropdownToggledEvent is emitted when a dropdown opens or closes
type DropdownToggledEvent struct {
	Open bool
}

func (e DropdownToggledEvent) Type() EventType { return EventDropdownToggled }

// ConfigLoadedEvent is emitted once configuration has been read
type ConfigLoadedEvent struct {
	Path        string // empty when only defaults were used
	OptionCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// AppReadyEvent is emitted after the first frame is drawn
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
