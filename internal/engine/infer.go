package engine

import "strings"

// sampleLimit caps how many rows inference inspects per column.
const sampleLimit = 50

// dateParseThreshold is the minimum share of sampled non-empty values that
// must parse as dates for a column to qualify.
const dateParseThreshold = 0.3

// dateNameCandidates are matched (case-insensitive, substring or exact)
// against column names before any data sampling happens.
var dateNameCandidates = []string{
	"date", "created_at", "order_date", "timestamp", "time", "created",
	"updated_at", "start_date", "end_date", "sale_date", "transaction_date",
	"period",
}

// regionNameCandidates are scanned in priority order; the first column whose
// lower-cased name equals or contains a candidate wins.
var regionNameCandidates = []string{
	"region", "region_name", "country", "country_name", "area", "geographic",
	"location", "territory", "zone", "market", "geo",
}

// InferDateColumn heuristically identifies the date-like column of a row
// batch. Name-matched candidates are sampled first; if none passes, every
// column is tested by the same sampling rule. Returns "" when nothing
// qualifies, which callers must treat as "date filtering is a no-op".
func InferDateColumn(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}
	columns := columnOrder(rows)

	// 1. Name-matched candidates, in column order
	for _, col := range columns {
		if matchesDateName(col) && columnParsesAsDates(rows, col) {
			return col
		}
	}

	// 2. Fallback: sample every column
	for _, col := range columns {
		if columnParsesAsDates(rows, col) {
			return col
		}
	}
	return ""
}

func matchesDateName(column string) bool {
	lower := strings.ToLower(column)
	if strings.Contains(lower, "_date") {
		return true
	}
	for _, candidate := range dateNameCandidates {
		if lower == candidate || strings.Contains(lower, candidate) {
			return true
		}
	}
	return false
}

// columnParsesAsDates samples up to the first 50 rows and accepts the column
// when at least 30% of the non-empty sampled values parse as dates.
func columnParsesAsDates(rows []Row, column string) bool {
	limit := len(rows)
	if limit > sampleLimit {
		limit = sampleLimit
	}

	nonEmpty := 0
	parsed := 0
	for _, row := range rows[:limit] {
		v, ok := row[column]
		if !ok || ToString(v) == "" {
			continue
		}
		nonEmpty++
		if _, ok := ParseDate(v); ok {
			parsed++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return float64(parsed)/float64(nonEmpty) >= dateParseThreshold
}

// InferRegionColumn identifies a region/geography-like column by name alone;
// no data sampling is involved. Candidates are scanned in priority order,
// then columns in deterministic order. Returns "" when nothing matches.
func InferRegionColumn(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}
	columns := columnOrder(rows)

	for _, candidate := range regionNameCandidates {
		for _, col := range columns {
			lower := strings.ToLower(col)
			if lower == candidate || strings.Contains(lower, candidate) {
				return col
			}
		}
	}
	return ""
}
