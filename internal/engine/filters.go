package engine

import (
	"sort"
	"strings"
)

// ApplyGlobalFilters narrows rows by free-text search, inferred date range,
// and inferred region, in that order. Each stage operates on the output of
// the previous one, so column inference is recomputed against the
// progressively narrowed set. A nil clock means time.Now.
func ApplyGlobalFilters(rows []Row, state FilterState, clock Clock) []Row {
	rows = applySearch(rows, state.Search)
	rows = applyDateRange(rows, state.DateRange, clock)
	rows = applyRegion(rows, state.Region)
	return rows
}

// applySearch keeps rows where any field's string form contains the
// lower-cased search term as a substring.
func applySearch(rows []Row, search string) []Row {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return rows
	}

	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, v := range row {
			if strings.Contains(strings.ToLower(ToString(v)), term) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	return filtered
}

// applyDateRange keeps rows whose inferred date column falls inside the
// selected window. "custom" collects no explicit start/end at this layer and
// therefore always passes. Rows with unparseable date values are dropped
// while a range filter is active.
func applyDateRange(rows []Row, dateRange DateRange, clock Clock) []Row {
	if dateRange == RangeNone || dateRange == RangeCustom {
		return rows
	}

	column := InferDateColumn(rows)
	if column == "" {
		return rows
	}

	start, end, ok := rangeWindow(dateRange, resolveClock(clock))
	if !ok {
		return rows
	}

	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		t, ok := ParseDate(row[column])
		if ok && inWindow(t, start, end) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// applyRegion keeps rows whose inferred region column equals the filter
// value or contains it as a substring, case-insensitively.
func applyRegion(rows []Row, region string) []Row {
	if region == "" || region == "all" {
		return rows
	}

	column := InferRegionColumn(rows)
	if column == "" {
		return rows
	}

	want := strings.ToLower(region)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		have := strings.ToLower(ToString(row[column]))
		if have == want || strings.Contains(have, want) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// RegionOptions derives the region dropdown entries from a row batch. The
// list always begins with the "all" no-op entry; if a region column is
// found, the distinct non-empty values follow, sorted ascending.
func RegionOptions(rows []Row) []Option {
	options := []Option{{Value: "all", Label: "All Regions"}}

	column := InferRegionColumn(rows)
	if column == "" {
		return options
	}

	seen := make(map[string]bool)
	var values []string
	for _, row := range rows {
		v := ToString(row[column])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)

	for _, v := range values {
		options = append(options, Option{Value: v, Label: v})
	}
	return options
}
