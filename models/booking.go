package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking holds a reserved date span for a property. Bookings may be created
// by guests who only leave a name and phone, so there is no user FK here.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint `gorm:"index;column:property_id" json:"property_id"`

	StartDate datatypes.Date `gorm:"column:start_date;index" json:"-"`
	EndDate   datatypes.Date `gorm:"column:end_date;index" json:"-"`

	ReferenceCode string  `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`
	UserName      *string `gorm:"column:user_name;size:255" json:"user_name,omitempty"`
	Phone         *string `gorm:"column:phone;size:255" json:"phone,omitempty"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}
