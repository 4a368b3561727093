package multiselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	removeMark   = "×"
	checkMark    = "✔"
	emptyMessage = "No options found"
	ellipsis     = "…"

	// minInputWidth is the room the search field needs to share a line with chips
	minInputWidth = 8
)

type zoneKind int

const (
	zoneLabel zoneKind = iota
	zoneControl
	zoneChipRemove
	zoneDropdown
	zoneOption
)

// zone is a clickable rectangle relative to the widget origin
type zone struct {
	kind       zoneKind
	x, y, w, h int
	index      int // chip index into the selection, or row index into Filtered
}

func (z zone) contains(x, y int) bool {
	return x >= z.x && y >= z.y && x < z.x+z.w && y < z.y+z.h
}

// frame is one rendering of the widget together with its hit zones
type frame struct {
	view   string
	width  int
	height int
	zones  []zone // most specific first
}

func (f frame) hit(x, y int) (zone, bool) {
	for _, z := range f.zones {
		if z.contains(x, y) {
			return z, true
		}
	}
	return zone{}, false
}

// View renders the widget
func (m *Model) View() string {
	return m.layout().view
}

// layout renders the current state. Hit testing calls it too, so zones
// always match what the state would draw.
func (m *Model) layout() frame {
	var (
		sections []string
		specific []zone
		general  []zone
		top      int
	)

	if m.label != "" {
		label := m.styles.Label.Render(ansi.Truncate(m.label, m.width, ellipsis))
		h := lipgloss.Height(label)
		general = append(general, zone{kind: zoneLabel, x: 0, y: top, w: m.width, h: h})
		sections = append(sections, label)
		top += h
	}

	control, chipZones := m.renderControl()
	controlH := lipgloss.Height(control)
	for _, z := range chipZones {
		z.y += top
		specific = append(specific, z)
	}
	general = append(general, zone{kind: zoneControl, x: 0, y: top, w: m.width, h: controlH})
	sections = append(sections, control)
	top += controlH

	if m.open {
		dropdown, rowZones := m.renderDropdown()
		dropdownH := lipgloss.Height(dropdown)
		for _, z := range rowZones {
			z.y += top
			specific = append(specific, z)
		}
		general = append(general, zone{kind: zoneDropdown, x: 0, y: top, w: m.width, h: dropdownH})
		sections = append(sections, dropdown)
		top += dropdownH
	}

	return frame{
		view:   lipgloss.JoinVertical(lipgloss.Left, sections...),
		width:  m.width,
		height: top,
		zones:  append(specific, general...),
	}
}

// renderControl draws the chips and search field. Chip zones are relative
// to the top of the control box.
func (m *Model) renderControl() (string, []zone) {
	style := m.styles.Control
	if m.search.Focused() {
		style = m.styles.ControlFocused
	}
	inner := m.width - style.GetHorizontalFrameSize()
	left := style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	top := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()

	var (
		lines []string
		line  strings.Builder
		col   int
		zones []zone
	)
	flush := func() {
		lines = append(lines, padRight(line.String(), inner))
		line.Reset()
		col = 0
	}

	selected := m.store.Selected()
	for i, opt := range selected {
		chip := m.renderChip(opt.Label, inner)
		w := lipgloss.Width(chip)
		if col > 0 && col+1+w > inner {
			flush()
		}
		if col > 0 {
			line.WriteString(" ")
			col++
		}
		markX := col + w - 1 - m.styles.Chip.GetPaddingRight() - m.styles.Chip.GetBorderRightSize()
		zones = append(zones, zone{
			kind:  zoneChipRemove,
			x:     left + markX,
			y:     top + len(lines),
			w:     1,
			h:     1,
			index: i,
		})
		line.WriteString(chip)
		col += w
	}

	if col > 0 && inner-col-1 < minInputWidth {
		flush()
	}
	if col > 0 {
		line.WriteString(" ")
		col++
	}
	if len(selected) == 0 {
		m.search.Placeholder = m.placeholder
	} else {
		m.search.Placeholder = ""
	}
	line.WriteString(fit(m.search.View(), inner-col))
	flush()

	return style.Render(strings.Join(lines, "\n")), zones
}

func (m *Model) renderChip(label string, inner int) string {
	frameW := m.styles.Chip.GetHorizontalFrameSize()
	room := inner - frameW - 1 - lipgloss.Width(removeMark)
	if room < 1 {
		room = 1
	}
	return m.styles.Chip.Render(ansi.Truncate(label, room, ellipsis) + " " + removeMark)
}

// renderDropdown draws the visible window of filtered options. Row zones are
// relative to the top of the dropdown box.
func (m *Model) renderDropdown() (string, []zone) {
	style := m.styles.Dropdown
	inner := m.width - style.GetHorizontalFrameSize()
	left := style.GetMarginLeft() + style.GetBorderLeftSize()
	top := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
	rowW := m.width - style.GetHorizontalMargins() - style.GetHorizontalBorderSize()

	filtered := m.Filtered()
	if len(filtered) == 0 {
		return style.Render(m.styles.Empty.Render(padRight(emptyMessage, inner))), nil
	}

	selected := m.store.Selected()
	end := m.offset + m.maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	var (
		rows  []string
		zones []zone
	)
	for i := m.offset; i < end; i++ {
		opt := filtered[i]
		isSelected := selected.Contains(opt.Value)

		mark := ""
		if isSelected {
			mark = m.styles.Check.Render(checkMark)
		}
		room := inner - lipgloss.Width(checkMark) - 1
		text := padRight(ansi.Truncate(opt.Label, room, ellipsis), inner-lipgloss.Width(mark)) + mark

		rowStyle := m.styles.Option
		if isSelected {
			rowStyle = m.styles.SelectedOption
		}
		if i == m.highlighted {
			rowStyle = m.styles.HighlightedOption
		}
		rows = append(rows, rowStyle.Render(text))
		zones = append(zones, zone{
			kind:  zoneOption,
			x:     left,
			y:     top + len(rows) - 1,
			w:     rowW,
			h:     1,
			index: i,
		})
	}

	return style.Render(strings.Join(rows, "\n")), zones
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	return padRight(s, width)
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
