// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rental-backend/availability"
	"rental-backend/models"
)

var (
	ErrInvalidDateOrder = errors.New("start_date must not be after end_date")
	ErrBookingConflict  = errors.New("dates conflict with an existing booking")
)

// BookingService wraps *gorm.DB for the booking lifecycle and the
// availability queries built on top of it.
type BookingService struct {
	DB     *gorm.DB
	Policy availability.Policy
}

func NewBookingService(db *gorm.DB, policy availability.Policy) *BookingService {
	return &BookingService{DB: db, Policy: policy}
}

type BookingInput struct {
	PropertyID uint
	StartDate  time.Time
	EndDate    time.Time
	UserName   *string
	Phone      *string
}

// Create stores a booking inside a single transaction. Under the default
// policy no conflict check runs and double bookings are accepted; when
// AllowOverlappingBookings is off the booking's own span is tested against
// existing rows and rejected with ErrBookingConflict.
func (s *BookingService) Create(in BookingInput) (models.Booking, error) {
	start := availability.DateOf(in.StartDate)
	end := availability.DateOf(in.EndDate)
	if start.After(end) {
		return models.Booking{}, ErrInvalidDateOrder
	}

	booking := models.Booking{
		PropertyID:    in.PropertyID,
		StartDate:     datatypes.Date(start),
		EndDate:       datatypes.Date(end),
		ReferenceCode: uuid.NewString(),
		UserName:      in.UserName,
		Phone:         in.Phone,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if !s.Policy.AllowOverlappingBookings {
			var conflicts int64
			err := tx.Model(&models.Booking{}).
				Where("bookings.property_id = ?", in.PropertyID).
				Scopes(availability.OverlapCondition(availability.Window{Start: start, End: end})).
				Count(&conflicts).Error
			if err != nil {
				return fmt.Errorf("conflict check failed: %w", err)
			}
			if conflicts > 0 {
				return ErrBookingConflict
			}
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.First(&booking, id).Error
	return booking, err
}

type BookingUpdate struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserName  *string
	Phone     *string
}

func (s *BookingService) Update(id uint, in BookingUpdate) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		return booking, err
	}

	if in.StartDate != nil {
		booking.StartDate = datatypes.Date(availability.DateOf(*in.StartDate))
	}
	if in.EndDate != nil {
		booking.EndDate = datatypes.Date(availability.DateOf(*in.EndDate))
	}
	if time.Time(booking.StartDate).After(time.Time(booking.EndDate)) {
		return booking, ErrInvalidDateOrder
	}
	if in.UserName != nil {
		booking.UserName = in.UserName
	}
	if in.Phone != nil {
		booking.Phone = in.Phone
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&booking).Error
	})
	return booking, err
}

func (s *BookingService) Delete(id uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&booking).Error
	})
}

// List returns bookings, optionally narrowed to one property.
func (s *BookingService) List(propertyID *uint, limit, offset int) ([]models.Booking, int64, error) {
	db := s.DB.Model(&models.Booking{})
	if propertyID != nil {
		db = db.Where("bookings.property_id = ?", *propertyID)
	}

	var count int64
	if err := db.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := db.Session(&gorm.Session{}).Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, count, err
}

// OverlappingBookings returns the bookings of one property that conflict with
// the window. A property with zero bookings yields an empty slice, never an
// error, and no ordering is guaranteed.
func (s *BookingService) OverlappingBookings(propertyID uint, w availability.Window) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("bookings.property_id = ?", propertyID).
		Scopes(availability.OverlapCondition(w)).
		Find(&bookings).Error
	return bookings, err
}
