package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint  `gorm:"index;column:property_id" json:"property_id"`
	UserID     uint  `gorm:"index;column:user_id" json:"user_id"`
	ReplyID    *uint `gorm:"column:reply_id" json:"reply_id,omitempty"`

	Content string `gorm:"size:350" json:"content"`

	// new comments are hidden until moderated
	IsActive bool `gorm:"column:is_active;default:false" json:"is_active"`

	User    User      `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Replies []Comment `gorm:"foreignKey:ReplyID" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
