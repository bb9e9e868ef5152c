package availability

import (
	"os"
	"strings"
	"time"
)

// Policy names the availability decisions that used to be implicit product
// behavior, so either side of each decision can be asserted in tests and
// flipped without code changes.
type Policy struct {
	// StrictSearchExclusion makes search drop a property on the full overlap
	// test instead of the narrower end-date-in-window test. Off by default:
	// the shipped behavior only blocks a result when a stay literally ends
	// inside the requested window.
	StrictSearchExclusion bool

	// AllowOverlappingBookings keeps booking creation free of conflict
	// checks. On by default: double bookings are allowed at write time and
	// surfaced at read/search time only.
	AllowOverlappingBookings bool
}

func DefaultPolicy() Policy {
	return Policy{
		StrictSearchExclusion:    false,
		AllowOverlappingBookings: true,
	}
}

// PolicyFromEnv reads AVAILABILITY_STRICT_SEARCH and
// ALLOW_OVERLAPPING_BOOKINGS, keeping the defaults for unset or blank values.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v := strings.TrimSpace(os.Getenv("AVAILABILITY_STRICT_SEARCH")); v != "" {
		p.StrictSearchExclusion = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv("ALLOW_OVERLAPPING_BOOKINGS")); v != "" {
		p.AllowOverlappingBookings = isTruthy(v)
	}
	return p
}

// Excluded is the in-process mirror of the ExcludeBooked scope for a single
// booking span: it reports whether that booking drops its property from
// search results under policy p.
func (p Policy) Excluded(w Window, bStart, bEnd time.Time) bool {
	if p.StrictSearchExclusion {
		return w.Overlaps(bStart, bEnd)
	}
	return w.EndsWithin(bEnd)
}

func isTruthy(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}
