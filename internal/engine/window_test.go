package engine

import (
	"testing"
	"time"
)

func TestRangeWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		kind      DateRange
		wantStart time.Time
		ok        bool
	}{
		{"Last7", RangeLast7, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), true},
		{"Last30", RangeLast30, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), true},
		{"Last90", RangeLast90, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), true},
		{"ThisYear", RangeThisYear, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"None", RangeNone, time.Time{}, false},
		{"Custom", RangeCustom, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := rangeWindow(tt.kind, now)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if end.Before(now) {
				t.Errorf("end %v must not precede now %v", end, now)
			}
		})
	}
}

func TestRangeWindowInclusiveToday(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC)
	start, end, _ := rangeWindow(RangeLast7, now)

	// A timestamp later today still falls inside the window.
	tonight := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)
	if !inWindow(tonight, start, end) {
		t.Error("window ending today must include the whole day")
	}
	lastWeek := time.Date(2024, 6, 7, 23, 59, 0, 0, time.UTC)
	if inWindow(lastWeek, start, end) {
		t.Error("timestamps before the window start must be excluded")
	}
}
