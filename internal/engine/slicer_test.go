package engine

import (
	"reflect"
	"testing"
)

func TestSlicerOptions(t *testing.T) {
	rows := []Row{
		{"status": "open"},
		{"status": "closed"},
		{"status": "open"},
		{"status": ""},
	}
	s := NewSlicerState(Binding{FilterField: "status"}, nil)

	got := s.Options(rows)
	want := []Option{{Value: "open", Label: "open"}, {Value: "closed", Label: "closed"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options() = %v, want %v", got, want)
	}
}

func TestSlicerOptionsRecomputedFromFilteredRows(t *testing.T) {
	rows := []Row{
		{"region": "US", "status": "open"},
		{"region": "EU", "status": "closed"},
	}
	s := NewSlicerState(Binding{FilterField: "status"}, nil)

	narrowed := ApplyGlobalFilters(rows, FilterState{Region: "us"}, nil)
	got := s.Options(narrowed)
	if len(got) != 1 || got[0].Value != "open" {
		t.Errorf("options over narrowed rows = %v, want only open", got)
	}
}

func TestSlicerToggle(t *testing.T) {
	var gotValue string
	var gotSelected bool
	calls := 0

	s := NewSlicerState(Binding{FilterField: "status"}, func(value string, selected bool) {
		gotValue, gotSelected = value, selected
		calls++
	})

	s.Toggle("open")
	if calls != 1 || gotValue != "open" || !gotSelected {
		t.Errorf("after first toggle: calls=%d value=%q selected=%v", calls, gotValue, gotSelected)
	}
	if !s.IsSelected("open") {
		t.Error("open should be selected")
	}

	s.Toggle("open")
	if calls != 2 || gotSelected {
		t.Errorf("after second toggle: calls=%d selected=%v", calls, gotSelected)
	}
	if s.IsSelected("open") {
		t.Error("open should be unselected again")
	}
}

func TestSlicerSeededFromBinding(t *testing.T) {
	b := Binding{FilterField: "status", SelectedFilters: []string{"open", "blocked"}}
	s := NewSlicerState(b, nil)

	if got := s.Selected(); !reflect.DeepEqual(got, []string{"blocked", "open"}) {
		t.Errorf("Selected() = %v, want seeded selection", got)
	}
}

func TestSlicerMultiSelect(t *testing.T) {
	s := NewSlicerState(Binding{FilterField: "status"}, nil)
	s.Toggle("open")
	s.Toggle("closed")

	// No exclusivity: both stay selected.
	if !s.IsSelected("open") || !s.IsSelected("closed") {
		t.Errorf("expected both values selected, got %v", s.Selected())
	}
}

func TestSlicerApplySelection(t *testing.T) {
	rows := []Row{
		{"status": "open", "id": 1},
		{"status": "closed", "id": 2},
		{"status": "open", "id": 3},
	}

	s := NewSlicerState(Binding{FilterField: "status"}, nil)
	if got := s.ApplySelection(rows); len(got) != 3 {
		t.Errorf("empty selection must filter nothing, got %d rows", len(got))
	}

	s.Toggle("open")
	got := s.ApplySelection(rows)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, row := range got {
		if ToString(row["status"]) != "open" {
			t.Errorf("unexpected row %v", row)
		}
	}
}
