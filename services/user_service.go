package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flexfit-backend/models"

	"gorm.io/gorm"
)

// AvatarUploader stores avatar images and returns their public URL. Nil-able.
type AvatarUploader interface {
	UploadBase64Image(ctx context.Context, base64Data, filenamePrefix string) (string, error)
}

type UserService struct {
	db       *gorm.DB
	uploader AvatarUploader
}

func NewUserService(db *gorm.DB, uploader AvatarUploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

type ProfileInput struct {
	FullName    string  `json:"full_name"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	FitnessGoal string  `json:"fitness_goal"`
	Avatar      string  `json:"avatar"` // base64 data URL
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if goal := strings.TrimSpace(input.FitnessGoal); goal != "" {
		user.FitnessGoal = goal
	}
	if input.Avatar != "" {
		if s.uploader == nil {
			return nil, errors.New("avatar uploads not configured")
		}
		url, err := s.uploader.UploadBase64Image(ctx, input.Avatar, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarURL = url
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
