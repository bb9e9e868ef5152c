// services/booking_service_test.go
package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rental-backend/availability"
	"rental-backend/models"
)

func TestBookingCreateRejectsReversedDates(t *testing.T) {
	svc := NewBookingService(nil, availability.DefaultPolicy())

	_, err := svc.Create(BookingInput{
		PropertyID: 1,
		StartDate:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidDateOrder) {
		t.Fatalf("err = %v, want ErrInvalidDateOrder", err)
	}
}

func TestBookingCreateComparesDatesNotTimestamps(t *testing.T) {
	// Same calendar day with reversed times of day is a valid single-day stay:
	// only the date component counts for ordering.
	svc := NewBookingService(nil, availability.DefaultPolicy())

	start := availability.DateOf(time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC))
	end := availability.DateOf(time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC))
	if start.After(end) {
		t.Fatal("date truncation must make same-day timestamps equal")
	}

	_, err := svc.Create(BookingInput{
		PropertyID: 1,
		StartDate:  time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidDateOrder) {
		t.Fatalf("err = %v, want ErrInvalidDateOrder for reversed calendar days", err)
	}
}

func TestOverlappingBookingsSQL(t *testing.T) {
	svc := NewBookingService(dryRunDB(t), availability.DefaultPolicy())
	w := availability.Window{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
	}

	tx := svc.DB.Model(&models.Booking{}).
		Where("bookings.property_id = ?", uint(7)).
		Scopes(availability.OverlapCondition(w)).
		Find(&[]models.Booking{})
	if tx.Error != nil {
		t.Fatalf("build query: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	if !strings.Contains(sql, "bookings.property_id = ?") {
		t.Errorf("query must narrow to one property:\n%s", sql)
	}
	if !strings.Contains(sql, "bookings.start_date <= ? AND bookings.end_date >= ?") {
		t.Errorf("query must carry the interval-intersection clause:\n%s", sql)
	}
	if !strings.Contains(sql, "`deleted_at` IS NULL") {
		t.Errorf("soft-deleted bookings must be invisible:\n%s", sql)
	}
}
