package models

import (
	"time"
)

// Like is the toggleable reaction backing Property.LikeCount. Hard-deleted on
// toggle-off: a soft-deleted row would keep occupying the unique index and
// block re-liking.
type Like struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	PropertyID uint `gorm:"column:property_id;uniqueIndex:idx_likes_property_user" json:"property_id"`
	UserID     uint `gorm:"column:user_id;uniqueIndex:idx_likes_property_user" json:"user_id"`
}

func (Like) TableName() string {
	return "likes"
}

// Favorite is a user's saved listing. Hard-deleted for the same reason as Like.
type Favorite struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	PropertyID uint `gorm:"column:property_id;uniqueIndex:idx_favorites_property_user" json:"property_id"`
	UserID     uint `gorm:"column:user_id;uniqueIndex:idx_favorites_property_user" json:"user_id"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
