package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`

	Height      float64 `json:"height"`       // cm
	Weight      float64 `json:"weight"`       // kg
	FitnessGoal string  `json:"fitness_goal"` // weight-loss | muscle-gain | maintenance
	AvatarURL   string  `json:"avatar_url"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
