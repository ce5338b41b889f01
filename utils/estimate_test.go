package utils

import (
	"testing"

	"flexfit-backend/models"
)

func TestEstimateNutritionCategories(t *testing.T) {
	t.Run("low keyword wins over unmatched words", func(t *testing.T) {
		rec := EstimateNutrition("cucumber salad", nil)
		if rec.Calories != lowTemplate.Calories {
			t.Errorf("expected low-calorie template (%v kcal), got %v", lowTemplate.Calories, rec.Calories)
		}
		if rec.Name != "cucumber salad" {
			t.Errorf("unexpected name %q", rec.Name)
		}
	})

	t.Run("high keyword", func(t *testing.T) {
		rec := EstimateNutrition("cheese pizza", nil)
		if rec.Calories != highTemplate.Calories {
			t.Errorf("expected high-calorie template (%v kcal), got %v", highTemplate.Calories, rec.Calories)
		}
	})

	t.Run("unmatched name defaults to medium", func(t *testing.T) {
		rec := EstimateNutrition("banana", nil)
		if rec.Calories != mediumTemplate.Calories {
			t.Errorf("expected medium template (%v kcal), got %v", mediumTemplate.Calories, rec.Calories)
		}
	})

	t.Run("name is trimmed and source set", func(t *testing.T) {
		rec := EstimateNutrition("  banana  ", nil)
		if rec.Name != "banana" {
			t.Errorf("expected trimmed name, got %q", rec.Name)
		}
		if rec.Source != models.SourceFallback {
			t.Errorf("expected source %q, got %q", models.SourceFallback, rec.Source)
		}
	})
}

// Each field merges independently: valid partial values survive, invalid
// ones fall back to the template.
func TestEstimateNutritionPartialMerge(t *testing.T) {
	partial := &models.NutritionText{
		Calories: "52 kcal",
		Protein:  "not a number",
		Carbs:    "",
		Fat:      "-1 g",
		Fiber:    "2.4 g",
	}
	rec := EstimateNutrition("apple", partial)

	if rec.Calories != 52 {
		t.Errorf("calories: want 52 from partial, got %v", rec.Calories)
	}
	if rec.Fiber != 2.4 {
		t.Errorf("fiber: want 2.4 from partial, got %v", rec.Fiber)
	}
	if rec.Protein != mediumTemplate.Protein {
		t.Errorf("protein: want template %v, got %v", mediumTemplate.Protein, rec.Protein)
	}
	if rec.Carbs != mediumTemplate.Carbs {
		t.Errorf("carbs: want template %v, got %v", mediumTemplate.Carbs, rec.Carbs)
	}
	if rec.Fat != mediumTemplate.Fat {
		t.Errorf("fat: want template %v, got %v", mediumTemplate.Fat, rec.Fat)
	}
}

func TestEstimateNutritionAlwaysComplete(t *testing.T) {
	for _, name := range []string{"", "   ", "???", "cheese", "lettuce wrap"} {
		rec := EstimateNutrition(name, nil)
		for field, v := range map[string]float64{
			"calories": rec.Calories,
			"protein":  rec.Protein,
			"carbs":    rec.Carbs,
			"fat":      rec.Fat,
			"fiber":    rec.Fiber,
		} {
			if v < 0 {
				t.Errorf("EstimateNutrition(%q): %s is negative: %v", name, field, v)
			}
		}
	}
}
