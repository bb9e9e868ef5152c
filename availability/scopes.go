package availability

import (
	"gorm.io/gorm"
)

// The filters below are expressed as SQL conditions rather than in-process
// scans: the candidate set on search can be large and the availability clause
// has to compose with half a dozen other facets in one query pass.

// OverlapCondition narrows a bookings query to rows overlapping w. Same three
// clauses as Window.Overlaps.
func OverlapCondition(w Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"(bookings.start_date BETWEEN ? AND ?)"+
				" OR (bookings.end_date BETWEEN ? AND ?)"+
				" OR (bookings.start_date <= ? AND bookings.end_date >= ?)",
			w.Start, w.End, w.Start, w.End, w.End, w.Start,
		)
	}
}

// ExcludeBooked drops candidate properties that have a conflicting booking in
// w. Under the default policy a property is excluded only when a booking's
// end date falls inside the window; StrictSearchExclusion applies the full
// overlap test instead.
func ExcludeBooked(w Window, p Policy) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.StrictSearchExclusion {
			return db.Where(
				"NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.property_id = properties.id"+
					" AND bookings.deleted_at IS NULL"+
					" AND ((bookings.start_date BETWEEN ? AND ?)"+
					" OR (bookings.end_date BETWEEN ? AND ?)"+
					" OR (bookings.start_date <= ? AND bookings.end_date >= ?)))",
				w.Start, w.End, w.Start, w.End, w.End, w.Start,
			)
		}
		return db.Where(
			"NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.property_id = properties.id"+
				" AND bookings.deleted_at IS NULL"+
				" AND bookings.end_date BETWEEN ? AND ?)",
			w.Start, w.End,
		)
	}
}
