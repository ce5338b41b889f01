package utils

import (
	"strings"

	"flexfit-backend/models"
)

// Keyword buckets for the local estimator. The low-calorie list is checked
// before the high-calorie one and the first match wins; anything unmatched is
// treated as medium. The lists are a product heuristic, not derived from any
// nutrition authority.
var (
	lowCalorieKeywords = []string{
		"lettuce", "cucumber", "spinach", "celery", "tomato", "watermelon",
		"broccoli", "cabbage", "zucchini", "mushroom", "kale", "radish",
	}
	highCalorieKeywords = []string{
		"cheese", "pizza", "burger", "fries", "chocolate", "butter", "ghee",
		"paneer", "cake", "fried", "bacon", "peanut", "donut", "pastry",
	}
)

// Fixed per-serving templates for each calorie bucket.
var (
	lowTemplate    = models.FoodRecord{Calories: 35, Protein: 1.5, Carbs: 6, Fat: 0.3, Fiber: 2}
	mediumTemplate = models.FoodRecord{Calories: 150, Protein: 5, Carbs: 20, Fat: 5, Fiber: 2.5}
	highTemplate   = models.FoodRecord{Calories: 320, Protein: 9, Carbs: 30, Fat: 18, Fiber: 1.5}
)

// EstimateNutrition produces a complete nutrition record for a food name
// without any external dependency. When partial values are supplied, each
// field that parses to a valid non-negative number is kept and only the rest
// are filled from the template. Never fails.
func EstimateNutrition(foodName string, partial *models.NutritionText) models.FoodRecord {
	rec := estimateTemplate(foodName)
	rec.Name = strings.TrimSpace(foodName)
	rec.Source = models.SourceFallback

	if partial != nil {
		if v, ok := ParseNonNegative(partial.Calories); ok {
			rec.Calories = v
		}
		if v, ok := ParseNonNegative(partial.Protein); ok {
			rec.Protein = v
		}
		if v, ok := ParseNonNegative(partial.Carbs); ok {
			rec.Carbs = v
		}
		if v, ok := ParseNonNegative(partial.Fat); ok {
			rec.Fat = v
		}
		if v, ok := ParseNonNegative(partial.Fiber); ok {
			rec.Fiber = v
		}
	}
	return rec
}

func estimateTemplate(foodName string) models.FoodRecord {
	name := strings.ToLower(foodName)
	if containsAny(name, lowCalorieKeywords...) {
		return lowTemplate
	}
	if containsAny(name, highCalorieKeywords...) {
		return highTemplate
	}
	return mediumTemplate
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
