// services/image_service.go
package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rental-backend/models"
)

// ImageService manages image metadata rows. Actual upload and resizing happen
// in the media pipeline; this service only records the results.
type ImageService struct {
	DB *gorm.DB
}

func NewImageService(db *gorm.DB) *ImageService {
	return &ImageService{DB: db}
}

func (s *ImageService) Create(propertyID uint, original, thumbnail string, meta datatypes.JSON) (models.Image, error) {
	image := models.Image{
		PropertyID: propertyID,
		Original:   original,
		Thumbnail:  thumbnail,
		Meta:       meta,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, propertyID).Error; err != nil {
			return err
		}
		return tx.Create(&image).Error
	})
	return image, err
}

// SetMain marks one image as the listing's label and clears the flag on the
// property's other images.
func (s *ImageService) SetMain(imageID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.First(&image, imageID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Image{}).
			Where("property_id = ?", image.PropertyID).
			Update("is_label", false).Error; err != nil {
			return err
		}
		return tx.Model(&image).Update("is_label", true).Error
	})
}

func (s *ImageService) Delete(id uint) error {
	var image models.Image
	if err := s.DB.First(&image, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&image).Error
}
