package models

import (
	"time"

	"gorm.io/gorm"
)

type Property struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string `gorm:"size:255;index" json:"name"`
	PricePerNight uint   `gorm:"column:price_per_night;index" json:"price_per_night"`
	PricePerWeek  *uint  `gorm:"column:price_per_week" json:"price_per_week,omitempty"`
	PricePerMonth *uint  `gorm:"column:price_per_month" json:"price_per_month,omitempty"`

	OwnerID uint `gorm:"index;column:owner_id" json:"owner_id"`

	RoomsQty   uint  `gorm:"column:rooms_qty;index" json:"rooms_qty"`
	GuestQty   uint  `gorm:"column:guest_qty;index" json:"guest_qty"`
	BedQty     uint  `gorm:"column:bed_qty" json:"bed_qty"`
	BedroomQty uint  `gorm:"column:bedroom_qty" json:"bedroom_qty"`
	ToiletQty  *uint `gorm:"column:toilet_qty" json:"toilet_qty,omitempty"`
	BathQty    *uint `gorm:"column:bath_qty" json:"bath_qty,omitempty"`

	GuestsWithBabies bool `gorm:"column:guests_with_babies;default:true" json:"guests_with_babies"`
	GuestsWithPets   bool `gorm:"column:guests_with_pets;default:false" json:"guests_with_pets"`

	Description string  `gorm:"type:text" json:"description"`
	City        string  `gorm:"size:255" json:"city"`
	Address     string  `gorm:"size:255" json:"address"`
	Lng         *string `gorm:"size:255" json:"lng,omitempty"`
	Lat         *string `gorm:"size:255" json:"lat,omitempty"`

	TypeID uint `gorm:"index;column:type_id" json:"type_id"`

	IsActive    bool   `gorm:"column:is_active;default:false" json:"is_active"`
	Priority    string `gorm:"size:50;default:MEDIUM" json:"priority"`
	LikeCount   uint   `gorm:"column:like_count;default:0" json:"like_count"`
	Rating      uint   `gorm:"column:rating;default:1" json:"rating"`
	BestProduct bool   `gorm:"column:best_product;default:false" json:"best_product"`
	Promotion   bool   `gorm:"column:promotion;default:false" json:"promotion"`

	Owner        User          `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Type         PropertyType  `gorm:"foreignKey:TypeID;references:ID" json:"type,omitempty"`
	Categories   []Category    `gorm:"many2many:property_categories" json:"categories,omitempty"`
	Conveniences []Convenience `gorm:"many2many:property_conveniences" json:"conveniences,omitempty"`
	Images       []Image       `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Bookings     []Booking     `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	Comments     []Comment     `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`

	// computed per-request, never stored
	IsNew      bool `gorm:"-" json:"is_new"`
	IsFavorite bool `gorm:"-" json:"is_favorite"`
}

func (Property) TableName() string {
	return "properties"
}
