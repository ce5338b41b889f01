package models

import "gorm.io/gorm"

type Feedback struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Rating  int    `json:"rating"` // 1..5
	Message string `json:"message"`
}
