// services/like_service.go
package services

import (
	"errors"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"rental-backend/models"
)

// ErrLikeRace is returned when two toggles for the same user and property
// collide on the unique index; the client just retries.
var ErrLikeRace = errors.New("like toggled concurrently, retry")

type LikeService struct {
	DB *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{DB: db}
}

// Toggle likes the property for the user, or removes the like if it already
// exists. The like row and the denormalized counter move in one transaction.
func (s *LikeService) Toggle(propertyID, userID uint) (liked bool, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, propertyID).Error; err != nil {
			return err
		}

		var like models.Like
		findErr := tx.Where("property_id = ? AND user_id = ?", propertyID, userID).First(&like).Error
		switch {
		case findErr == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Property{}).
				Where("id = ? AND like_count > 0", propertyID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
			liked = false
			return nil

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{PropertyID: propertyID, UserID: userID}).Error; err != nil {
				var mysqlErr *mysql.MySQLError
				if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
					return ErrLikeRace
				}
				return err
			}
			if err := tx.Model(&models.Property{}).
				Where("id = ?", propertyID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			liked = true
			return nil

		default:
			return findErr
		}
	})
	return liked, err
}

// AddFavorite saves the listing for the user. Saving twice is a no-op.
func (s *LikeService) AddFavorite(propertyID, userID uint) error {
	var property models.Property
	if err := s.DB.First(&property, propertyID).Error; err != nil {
		return err
	}
	err := s.DB.Create(&models.Favorite{PropertyID: propertyID, UserID: userID}).Error
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return nil
	}
	return err
}

func (s *LikeService) RemoveFavorite(propertyID, userID uint) error {
	return s.DB.
		Where("property_id = ? AND user_id = ?", propertyID, userID).
		Delete(&models.Favorite{}).Error
}
