package models

import (
	"time"

	"gorm.io/gorm"
)

// Reference data shown in search facets. Seeded at startup, see config.SeedDatabase.

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Icon     string `gorm:"size:512" json:"icon,omitempty"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (Category) TableName() string {
	return "categories"
}

type Convenience struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Icon     string `gorm:"size:512" json:"icon,omitempty"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (Convenience) TableName() string {
	return "conveniences"
}

type PropertyType struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"size:255" json:"name"`
	Icon string `gorm:"size:512" json:"icon,omitempty"`
}

func (PropertyType) TableName() string {
	return "types"
}
