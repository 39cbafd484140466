package engine

import "sort"

// ChangeFunc is invoked after every slicer toggle with the value and its new
// membership. Folding the resulting selection into the dashboard-wide filter
// state is the host's responsibility.
type ChangeFunc func(value string, selected bool)

// SlicerState tracks the multi-select option state of one slicer widget.
// Each distinct field value is independently selected or unselected; there
// is no exclusivity. The state is scoped to one widget's lifetime and is the
// only mutable state the engine owns.
type SlicerState struct {
	field    string
	selected map[string]bool
	onChange ChangeFunc
}

// NewSlicerState builds the state for a slicer binding, seeded from the
// binding's selectedFilters set. onChange may be nil.
func NewSlicerState(b Binding, onChange ChangeFunc) *SlicerState {
	selected := make(map[string]bool, len(b.SelectedFilters))
	for _, v := range b.SelectedFilters {
		selected[v] = true
	}
	return &SlicerState{
		field:    b.FilterField,
		selected: selected,
		onChange: onChange,
	}
}

// Options returns the slicer's option universe: the distinct non-empty
// values of the filter field over the given rows, in first-seen order. The
// caller passes the currently filtered rows, so options shrink and grow as
// sibling filters change.
func (s *SlicerState) Options(rows []Row) []Option {
	if s.field == "" {
		return nil
	}
	seen := make(map[string]bool)
	var options []Option
	for _, row := range rows {
		v := ToString(row[s.field])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, Option{Value: v, Label: v})
	}
	return options
}

// Toggle flips the membership of a value and notifies the host of the new
// state.
func (s *SlicerState) Toggle(value string) {
	now := !s.selected[value]
	if now {
		s.selected[value] = true
	} else {
		delete(s.selected, value)
	}
	if s.onChange != nil {
		s.onChange(value, now)
	}
}

// IsSelected reports whether a value is currently part of the selection.
func (s *SlicerState) IsSelected(value string) bool {
	return s.selected[value]
}

// Selected returns the current selection as a sorted slice.
func (s *SlicerState) Selected() []string {
	values := make([]string, 0, len(s.selected))
	for v := range s.selected {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// ApplySelection keeps only rows whose filter-field value is part of the
// selection. An empty selection filters nothing, matching the initial
// all-unselected state of a freshly placed slicer.
func (s *SlicerState) ApplySelection(rows []Row) []Row {
	if s.field == "" || len(s.selected) == 0 {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if s.selected[ToString(row[s.field])] {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
