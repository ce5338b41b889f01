package services

import (
	"fmt"
	"strings"

	"flexfit-backend/models"

	"gorm.io/gorm"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

func (s *FeedbackService) Create(userID uint, rating int, message string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	fb := &models.Feedback{UserID: userID, Rating: rating, Message: message}
	if err := s.db.Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *FeedbackService) ListForUser(userID uint) ([]models.Feedback, error) {
	var out []models.Feedback
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
