package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Clock supplies the current instant for date-range resolution. Passing nil
// wherever a Clock is accepted falls back to time.Now, so production callers
// never construct one; tests inject a fixed instant for deterministic windows.
type Clock func() time.Time

func resolveClock(clock Clock) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}

// ToNumber coerces an arbitrary cell value to a float64. Coercion failures
// always resolve to 0, never to an error; this leniency is part of the
// aggregation contract.
func ToNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToString renders a cell value for display, search matching, and group
// keys. nil renders as the empty string.
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	case time.Time:
		return s.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// dateLayouts are tried in order when parsing string cells. The list covers
// the formats ingestion commonly emits: ISO timestamps, plain dates, and
// slash-separated US dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Epoch bounds used to decide whether a bare number is a timestamp.
// Values below ~2001 in seconds are treated as plain measures, not dates,
// so numeric columns like "amount" never masquerade as date columns.
const (
	minEpochSeconds = 1e9
	minEpochMillis  = 1e12
)

// ParseDate attempts to interpret a cell value as a point in time. It
// supports millisecond epochs, second epochs, and the string layouts above.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return epochToTime(n)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case nil, bool:
		return time.Time{}, false
	default:
		return epochToTime(ToNumber(v))
	}
}

func epochToTime(n float64) (time.Time, bool) {
	switch {
	case n >= minEpochMillis:
		return time.UnixMilli(int64(n)), true
	case n >= minEpochSeconds:
		return time.Unix(int64(n), 0), true
	default:
		return time.Time{}, false
	}
}

// columnOrder returns the union of column names across the sampled rows.
// Go maps carry no key order, so "original column order" is approximated by
// sorted names; the ordering only needs to be deterministic.
func columnOrder(rows []Row) []string {
	seen := make(map[string]bool)
	var columns []string
	limit := len(rows)
	if limit > sampleLimit {
		limit = sampleLimit
	}
	for _, row := range rows[:limit] {
		for name := range row {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
