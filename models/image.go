package models

import (
	"gorm.io/datatypes"
)

// Image stores metadata for an already-processed property photo. Upload and
// resizing are handled by the media pipeline, not this service.
type Image struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint `gorm:"index;column:property_id" json:"property_id"`

	Original  string `gorm:"size:512" json:"original"`
	Thumbnail string `gorm:"size:512" json:"thumbnail,omitempty"`

	// width/height/mimetype/size as reported by the media pipeline
	Meta datatypes.JSON `gorm:"column:meta" json:"meta,omitempty"`

	// IsLabel marks the main image shown on listing cards.
	IsLabel bool `gorm:"column:is_label;default:false" json:"is_label"`
}

func (Image) TableName() string {
	return "images"
}
