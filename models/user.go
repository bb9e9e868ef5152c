package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the minimal account record owner/like/favorite/comment FKs point at.
// Registration, verification and JWT auth live in a separate service.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"size:255" json:"name"`
	Phone string `gorm:"size:255;uniqueIndex" json:"phone"`
	Email string `gorm:"size:255" json:"email,omitempty"`
}

func (User) TableName() string {
	return "users"
}
