package engine

import "time"

// rangeWindow computes the inclusive time window for a rolling date-range
// selection, anchored at now. Boundaries are snapped to whole days so a
// window "ending today" includes everything up to the last nanosecond of
// today. The second return is false for selections that do not constrain
// time at all (none, custom).
func rangeWindow(kind DateRange, now time.Time) (start, end time.Time, ok bool) {
	end = snapToDayEnd(now)
	switch kind {
	case RangeLast7:
		return snapToDayStart(now.AddDate(0, 0, -7)), end, true
	case RangeLast30:
		return snapToDayStart(now.AddDate(0, 0, -30)), end, true
	case RangeLast90:
		return snapToDayStart(now.AddDate(0, 0, -90)), end, true
	case RangeThisYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		endOfYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location()).Add(-time.Nanosecond)
		return start, endOfYear, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// snapToDayStart normalizes a timestamp to the beginning of its day (0:00:00).
func snapToDayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// snapToDayEnd normalizes a timestamp to the very end of its day.
func snapToDayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// inWindow reports whether t falls inside [start, end] inclusive.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
