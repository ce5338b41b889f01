package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"flexfit-backend/models"
	"flexfit-backend/utils"
)

// One attempt against the completion service, bounded by this timeout. No
// retries: malformed or late answers degrade to the local estimator.
const completionTimeout = 30 * time.Second

// NutritionService turns free-text food queries into complete FoodRecords
// using a text-completion service, absorbing every malformed answer locally.
type NutritionService struct {
	gen TextGenerator
}

func NewNutritionService(gen TextGenerator) *NutritionService {
	return &NutritionService{gen: gen}
}

func nutritionPrompt(foodQuery string) string {
	return fmt.Sprintf(`Provide the nutrition facts for one standard serving of "%s".
Respond with only a JSON object, no markdown, in exactly this shape:
{"food": "name", "calories": "120 kcal", "protein": "5 g", "carbs": "20 g", "fat": "3 g", "fiber": "2 g"}
Every value must be a string that includes its unit.`, foodQuery)
}

// Lookup asks the completion service for nutrition facts and normalizes the
// answer. Only a failed completion call is surfaced as an error; everything
// the service says, however broken, still yields a complete record.
func (s *NutritionService) Lookup(ctx context.Context, foodQuery string) (models.FoodRecord, error) {
	if s.gen == nil {
		return models.FoodRecord{}, fmt.Errorf("completion service not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	raw, err := s.gen.GenerateContent(ctx, nutritionPrompt(foodQuery))
	if err != nil {
		return models.FoodRecord{}, fmt.Errorf("completion service: %w", err)
	}
	return s.normalize(foodQuery, raw), nil
}

// normalize extracts, repairs, sanitizes and validates the completion text.
func (s *NutritionService) normalize(foodQuery, raw string) models.FoodRecord {
	payload, ok := extractJSONObject(raw)
	if !ok {
		return utils.EstimateNutrition(foodQuery, nil)
	}

	var nt models.NutritionText
	if err := json.Unmarshal([]byte(payload), &nt); err != nil {
		if err := json.Unmarshal([]byte(repairJSON(payload)), &nt); err != nil {
			return utils.EstimateNutrition(foodQuery, nil)
		}
	}

	if strings.TrimSpace(nt.Food) == "" {
		nt.Food = foodQuery
	}

	// Sanitized values for fields whose original text parsed; invalid fields
	// stay empty in partial so the estimator fills them from its template.
	partial := models.NutritionText{Food: nt.Food}
	valid := true
	if _, ok := utils.ParseNonNegative(nt.Calories); ok {
		partial.Calories = utils.SanitizeNutritionValue(nt.Calories, "kcal")
	} else {
		valid = false
	}
	if _, ok := utils.ParseNonNegative(nt.Protein); ok {
		partial.Protein = utils.SanitizeNutritionValue(nt.Protein, "g")
	} else {
		valid = false
	}
	if _, ok := utils.ParseNonNegative(nt.Carbs); ok {
		partial.Carbs = utils.SanitizeNutritionValue(nt.Carbs, "g")
	} else {
		valid = false
	}
	if _, ok := utils.ParseNonNegative(nt.Fat); ok {
		partial.Fat = utils.SanitizeNutritionValue(nt.Fat, "g")
	} else {
		valid = false
	}
	if _, ok := utils.ParseNonNegative(nt.Fiber); ok {
		partial.Fiber = utils.SanitizeNutritionValue(nt.Fiber, "g")
	}

	if !valid {
		return utils.EstimateNutrition(nt.Food, &partial)
	}

	rec := models.FoodRecord{
		Name:   strings.TrimSpace(nt.Food),
		Source: models.SourceGeminiAI,
	}
	rec.Calories, _ = utils.ParseNonNegative(partial.Calories)
	rec.Protein, _ = utils.ParseNonNegative(partial.Protein)
	rec.Carbs, _ = utils.ParseNonNegative(partial.Carbs)
	rec.Fat, _ = utils.ParseNonNegative(partial.Fat)
	rec.Fiber, _ = utils.ParseNonNegative(partial.Fiber)
	return rec
}

// extractJSONObject strips markdown fences and cuts the text down to the
// outermost {...} pair.
func extractJSONObject(response string) (string, bool) {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return response[start : end+1], true
}

var (
	unquotedKeyRe   = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	singleQuotedRe  = regexp.MustCompile(`'([^']*)'`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// repairJSON fixes the defects small models habitually produce: unquoted
// object keys, single-quoted strings and trailing commas.
func repairJSON(s string) string {
	s = unquotedKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = singleQuotedRe.ReplaceAllString(s, `"$1"`)
	s = trailingCommaRe.ReplaceAllString(s, `$1`)
	return s
}
