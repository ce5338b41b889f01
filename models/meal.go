package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/…) with totals computed at write time.
type Meal struct {
	gorm.Model
	UserID uint           `gorm:"index;not null" json:"user_id"`
	Type   string         `json:"type"` // breakfast | lunch | dinner | snack
	AteAt  time.Time      `gorm:"index" json:"ate_at"`
	Items  []MealLineItem `json:"items"`

	TotalCalories int `json:"total_calories"`
	TotalProtein  int `json:"total_protein"`
	TotalCarbs    int `json:"total_carbs"`
	TotalFat      int `json:"total_fat"`
	TotalFiber    int `json:"total_fiber"`
}

// MealLineItem snapshots the food's nutrition at logging time, so later
// catalog corrections never rewrite historical meals.
type MealLineItem struct {
	gorm.Model
	MealID uint `gorm:"index" json:"meal_id"`

	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Source   string  `json:"source"`

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // free text, defaults to "serving"
}

// MealTotals are per-meal sums rounded to integers.
type MealTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}
