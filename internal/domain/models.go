package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyValue is returned when an option has no value key
	ErrEmptyValue = errors.New("option value is empty")
	// ErrDuplicateValue is returned when two options share a value key
	ErrDuplicateValue = errors.New("duplicate option value")
)

// Option represents one selectable entry
type Option struct {
	Value string `mapstructure:"value" toml:"value"` // unique key
	Label string `mapstructure:"label" toml:"label"` // display text
}

// OptionList is an ordered list of options in display order
type OptionList []Option

// Filter returns the options whose label contains term, ignoring case.
// An empty term matches everything.
func (l OptionList) Filter(term string) OptionList {
	needle := strings.ToLower(term)
	filtered := make(OptionList, 0, len(l))
	for _, opt := range l {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// Find returns the first option with the given value
func (l OptionList) Find(value string) (Option, bool) {
	for _, opt := range l {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Validate checks that every option has a non-empty, unique value
func (l OptionList) Validate() error {
	seen := make(map[string]int, len(l))
	for i, opt := range l {
		if opt.Value == "" {
			return fmt.Errorf("option %d (%q): %w", i, opt.Label, ErrEmptyValue)
		}
		if first, ok := seen[opt.Value]; ok {
			return fmt.Errorf("options %d and %d share %q: %w", first, i, opt.Value, ErrDuplicateValue)
		}
		seen[opt.Value] = i
	}
	return nil
}

// SelectionSet holds the chosen options in the order they were selected.
// Membership is decided by Value.
type SelectionSet []Option

// Contains reports whether an option with value is selected
func (s SelectionSet) Contains(value string) bool {
	return s.indexOf(value) >= 0
}

// Toggle returns a new set with opt removed if present, appended otherwise
func (s SelectionSet) Toggle(opt Option) SelectionSet {
	if s.Contains(opt.Value) {
		return s.Remove(opt.Value)
	}
	next := make(SelectionSet, len(s), len(s)+1)
	copy(next, s)
	return append(next, opt)
}

// Remove returns a new set without value. The contents are unchanged when
// value is not selected.
func (s SelectionSet) Remove(value string) SelectionSet {
	next := make(SelectionSet, 0, len(s))
	for _, opt := range s {
		if opt.Value != value {
			next = append(next, opt)
		}
	}
	return next
}

// Values returns the selected value keys in selection order
func (s SelectionSet) Values() []string {
	values := make([]string, len(s))
	for i, opt := range s {
		values[i] = opt.Value
	}
	return values
}

// Labels returns the selected labels in selection order
func (s SelectionSet) Labels() []string {
	labels := make([]string, len(s))
	for i, opt := range s {
		labels[i] = opt.Label
	}
	return labels
}

// Diff reports which values were added and removed going from s to next
func (s SelectionSet) Diff(next SelectionSet) (added, removed []string) {
	for _, opt := range next {
		if !s.Contains(opt.Value) {
			added = append(added, opt.Value)
		}
	}
	for _, opt := range s {
		if !next.Contains(opt.Value) {
			removed = append(removed, opt.Value)
		}
	}
	return added, removed
}

func (s SelectionSet) indexOf(value string) int {
	for i, opt := range s {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
