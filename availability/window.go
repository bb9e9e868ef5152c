package availability

import (
	"strings"
	"time"
)

// DateLayout is the wire format for every booking date in this API.
const DateLayout = "2006-01-02"

// Window is the inclusive [Start, End] date span used to query or filter
// bookings. Both bounds are date-only (midnight UTC).
type Window struct {
	Start time.Time
	End   time.Time
}

// DateOf strips the time-of-day component. Every comparison in this package
// is date-only; mixing timestamps in would reintroduce timezone off-by-one
// errors around midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DefaultEnd computes the rolling default horizon: first day of the current
// month, advanced two calendar months, minus one day. Pinning the day to 1
// before adding months keeps AddDate from normalizing across a short month,
// so Jan 15 2024 -> Feb 29 2024 and Dec 10 2024 -> Jan 31 2025.
func DefaultEnd(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 2, -1)
}

// Resolve fills absent window bounds: start falls back to today, end to
// DefaultEnd. It never fails.
func Resolve(start, end *time.Time, now time.Time) Window {
	w := Window{Start: DateOf(now), End: DefaultEnd(now)}
	if start != nil {
		w.Start = DateOf(*start)
	}
	if end != nil {
		w.End = DateOf(*end)
	}
	return w
}

// ParseDate parses a YYYY-MM-DD query parameter. ok is false for empty or
// malformed input.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseWindow builds a window from raw query parameters. Empty or malformed
// values silently fall back to the default bound; a bad date on a detail-page
// lookup is never an error.
func ParseWindow(startStr, endStr string, now time.Time) Window {
	var start, end *time.Time
	if t, ok := ParseDate(startStr); ok {
		start = &t
	}
	if t, ok := ParseDate(endStr); ok {
		end = &t
	}
	return Resolve(start, end, now)
}

// ContainsDate reports whether d falls inside the window, bounds included.
func (w Window) ContainsDate(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Overlaps reports whether the stored span [bStart, bEnd] conflicts with w.
// Three clauses, matching the stored SQL condition one to one: either bound
// falls inside the window, or the spans intersect. The third clause subsumes
// the first two; they are kept separate so this function and OverlapCondition
// stay provably the same predicate.
func (w Window) Overlaps(bStart, bEnd time.Time) bool {
	return w.ContainsDate(bStart) ||
		w.ContainsDate(bEnd) ||
		(!bStart.After(w.End) && !bEnd.Before(w.Start))
}

// EndsWithin is the narrower search-exclusion test: only the booking's end
// date is checked against the window.
func (w Window) EndsWithin(bEnd time.Time) bool {
	return w.ContainsDate(bEnd)
}
