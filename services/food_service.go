package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"flexfit-backend/models"
	"flexfit-backend/utils"

	"gorm.io/gorm"
)

type FoodService struct {
	db        *gorm.DB
	nutrition *NutritionService
}

func NewFoodService(db *gorm.DB, nutrition *NutritionService) *FoodService {
	return &FoodService{db: db, nutrition: nutrition}
}

// FindByName does a case-insensitive exact match against the catalog.
func (s *FoodService) FindByName(name string) (*models.FoodRecord, error) {
	var rec models.FoodRecord
	err := s.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Lookup returns a complete nutrition record for a free-text food query.
// Resolution order: catalog hit, then the completion service, then the local
// estimator. Once the query passes validation, a record always comes back —
// degraded accuracy is acceptable, structural incompleteness is not.
func (s *FoodService) Lookup(ctx context.Context, query string) (*models.FoodRecord, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, fmt.Errorf("food query too short")
	}

	if rec, err := s.FindByName(query); err == nil {
		return rec, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rec, err := s.nutrition.Lookup(ctx, query)
	if err != nil {
		// Completion service unreachable: the estimator keeps lookups alive.
		log.Printf("nutrition lookup degraded to estimator: %v", err)
		rec = utils.EstimateNutrition(query, nil)
	}
	return s.upsert(rec)
}

// CreateCustomFood stores a user-entered nutrition record. All five values
// must be non-negative.
func (s *FoodService) CreateCustomFood(name string, calories, protein, carbs, fat, fiber float64) (*models.FoodRecord, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, fmt.Errorf("food name too short")
	}
	for _, v := range []float64{calories, protein, carbs, fat, fiber} {
		if v < 0 {
			return nil, fmt.Errorf("nutrition values must be non-negative")
		}
	}
	return s.upsert(models.FoodRecord{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
		Source:   models.SourceCustom,
	})
}

// SearchFoods matches catalog entries by name substring.
func (s *FoodService) SearchFoods(query string, limit int) ([]models.FoodRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []models.FoodRecord
	err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(query))+"%").
		Order("name ASC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// SeedFoods upserts hand-written catalog entries, marking them database-sourced.
func (s *FoodService) SeedFoods(recs []models.FoodRecord) error {
	for _, rec := range recs {
		rec.Source = models.SourceDatabase
		if _, err := s.upsert(rec); err != nil {
			return err
		}
	}
	return nil
}

// upsert is idempotent on the lowercased name. Concurrent duplicate inserts
// for the same name are tolerated; no transactional uniqueness is enforced.
func (s *FoodService) upsert(rec models.FoodRecord) (*models.FoodRecord, error) {
	var existing models.FoodRecord
	err := s.db.Where("LOWER(name) = LOWER(?)", rec.Name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
