package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"flexfit-backend/models"
	"flexfit-backend/utils"

	"gorm.io/gorm"
)

// ResetMailer delivers password reset codes. Nil-able so auth still works
// when mail is not configured.
type ResetMailer interface {
	SendResetCode(ctx context.Context, to, code string) error
}

type AuthService struct {
	db     *gorm.DB
	mailer ResetMailer
}

func NewAuthService(db *gorm.DB, mailer ResetMailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

func (s *AuthService) Register(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// ForgotPassword stores a short-lived reset code and emails it. The response
// never reveals whether the address exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return
	}

	if s.mailer == nil {
		log.Printf("mailer not configured; reset code for %s not sent", email)
		return
	}
	if err := s.mailer.SendResetCode(ctx, user.Email, code); err != nil {
		log.Printf("reset email failed: %v", err)
	}
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
