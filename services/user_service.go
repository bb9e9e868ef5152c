// services/user_service.go
package services

import (
	"gorm.io/gorm"

	"rental-backend/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Create(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	return user, err
}
