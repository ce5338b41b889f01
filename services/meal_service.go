package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"flexfit-backend/models"

	"gorm.io/gorm"
)

// AggregateItems sums every macro across line items, scaling each by its
// quantity. Non-positive or NaN quantities count as a single serving and
// unusable macro values count as zero, so a bad line item can never poison
// the totals with NaN. Each final sum is rounded to the nearest integer,
// ties away from zero. Pure, no I/O.
func AggregateItems(items []models.MealLineItem) models.MealTotals {
	var cal, prot, carbs, fat, fiber float64
	for _, it := range items {
		q := it.Quantity
		if math.IsNaN(q) || q <= 0 {
			q = 1
		}
		cal += nz(it.Calories) * q
		prot += nz(it.Protein) * q
		carbs += nz(it.Carbs) * q
		fat += nz(it.Fat) * q
		fiber += nz(it.Fiber) * q
	}
	return models.MealTotals{
		Calories: int(math.Round(cal)),
		Protein:  int(math.Round(prot)),
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fat)),
		Fiber:    int(math.Round(fiber)),
	}
}

func nz(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
	"snacks":    true,
}

type MealService struct {
	db   *gorm.DB
	food *FoodService
	hub  *RealtimeHub // optional, nil disables broadcasts
}

func NewMealService(db *gorm.DB, food *FoodService, hub *RealtimeHub) *MealService {
	return &MealService{db: db, food: food, hub: hub}
}

// MealItemInput is one requested line item: a free-text food name plus how
// much of it was eaten.
type MealItemInput struct {
	Food     string  `json:"food"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func (s *MealService) buildItems(ctx context.Context, inputs []MealItemInput) ([]models.MealLineItem, error) {
	items := make([]models.MealLineItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 || math.IsNaN(in.Quantity) {
			return nil, fmt.Errorf("quantity must be positive for %q", in.Food)
		}
		rec, err := s.food.Lookup(ctx, in.Food)
		if err != nil {
			return nil, err
		}
		unit := strings.TrimSpace(in.Unit)
		if unit == "" {
			unit = "serving"
		}
		items = append(items, models.MealLineItem{
			FoodName: rec.Name,
			Calories: rec.Calories,
			Protein:  rec.Protein,
			Carbs:    rec.Carbs,
			Fat:      rec.Fat,
			Fiber:    rec.Fiber,
			Source:   rec.Source,
			Quantity: in.Quantity,
			Unit:     unit,
		})
	}
	return items, nil
}

func (s *MealService) AddMeal(ctx context.Context, userID uint, mealType string, ateAt time.Time, inputs []MealItemInput) (*models.Meal, error) {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if !mealTypes[mealType] {
		return nil, fmt.Errorf("unknown meal type %q", mealType)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("meal needs at least one item")
	}

	items, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}
	totals := AggregateItems(items)

	meal := &models.Meal{
		UserID:        userID,
		Type:          mealType,
		AteAt:         ateAt,
		Items:         items,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		TotalFiber:    totals.Fiber,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	s.broadcast(userID, "meal.logged", meal)
	return meal, nil
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // may be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

// ListMealsByDateRange returns the user's meals in the half-open window
// [from, to).
func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

// UpdateMeal replaces the meal's items and recomputes totals.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID uint, mealType string, ateAt time.Time, inputs []MealItemInput) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if !mealTypes[mealType] {
		return nil, fmt.Errorf("unknown meal type %q", mealType)
	}

	items, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}
	totals := AggregateItems(items)

	if err := s.db.
		Where("meal_id = ?", meal.ID).
		Delete(&models.MealLineItem{}).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].MealID = meal.ID
		if err := s.db.Create(&items[i]).Error; err != nil {
			return nil, err
		}
	}

	meal.Type = mealType
	meal.AteAt = ateAt
	meal.TotalCalories = totals.Calories
	meal.TotalProtein = totals.Protein
	meal.TotalCarbs = totals.Carbs
	meal.TotalFat = totals.Fat
	meal.TotalFiber = totals.Fiber
	if err := s.db.Save(&meal).Error; err != nil {
		return nil, err
	}

	var updated models.Meal
	if err := s.db.Preload("Items").First(&updated, meal.ID).Error; err != nil {
		return nil, err
	}

	s.broadcast(userID, "meal.updated", &updated)
	return &updated, nil
}

// DeleteMeal removes a meal and its items; only the owner may delete.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	if err := s.db.
		Where("meal_id = ?", meal.ID).
		Delete(&models.MealLineItem{}).Error; err != nil {
		return err
	}
	if err := s.db.Delete(&meal).Error; err != nil {
		return err
	}
	s.broadcast(userID, "meal.deleted", &meal)
	return nil
}

func (s *MealService) broadcast(userID uint, kind string, meal *models.Meal) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(userID, map[string]any{
		"kind": kind,
		"meal": meal,
	})
}
