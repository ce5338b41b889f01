package models

import "gorm.io/gorm"

// Provenance of a FoodRecord.
const (
	SourceDatabase = "database"
	SourceGeminiAI = "gemini-ai"
	SourceFallback = "fallback-estimation"
	SourceCustom   = "custom"
)

// FoodRecord is a normalized nutrition fact for a named food. Macro values
// are unit-less internally (calories in kcal, the rest in grams); units are
// attached only when formatting text for the wire.
type FoodRecord struct {
	gorm.Model
	Name     string  `gorm:"index;not null" json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Source   string  `json:"source"`
}

// NutritionText is the untrusted string-typed payload the completion service
// returns: every value is free text expected to carry its unit.
type NutritionText struct {
	Food     string `json:"food"`
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
	Fiber    string `json:"fiber"`
}
