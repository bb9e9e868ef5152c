// services/comment_service.go
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"rental-backend/models"
)

const commentMaxLen = 350

var ErrInvalidComment = errors.New("comment content is empty or too long")

type CommentService struct {
	DB *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{DB: db}
}

// Create stores a comment awaiting moderation (is_active=false).
func (s *CommentService) Create(propertyID, userID uint, replyID *uint, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > commentMaxLen {
		return models.Comment{}, ErrInvalidComment
	}

	comment := models.Comment{
		PropertyID: propertyID,
		UserID:     userID,
		ReplyID:    replyID,
		Content:    content,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, propertyID).Error; err != nil {
			return err
		}
		return tx.Create(&comment).Error
	})
	return comment, err
}

func (s *CommentService) Delete(id uint) error {
	var comment models.Comment
	if err := s.DB.First(&comment, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&comment).Error
}

// ListByProperty returns the moderated comments of a listing, newest first,
// with their authors and replies.
func (s *CommentService) ListByProperty(propertyID uint, limit, offset int) ([]models.Comment, int64, error) {
	db := s.DB.Model(&models.Comment{}).
		Where("comments.property_id = ? AND comments.is_active = ? AND comments.reply_id IS NULL", propertyID, true)

	var count int64
	if err := db.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := db.Session(&gorm.Session{}).
		Preload("User").
		Preload("Replies", "is_active = ?", true).
		Preload("Replies.User").
		Order("comments.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, count, err
}
