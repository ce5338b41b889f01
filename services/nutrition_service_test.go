package services

import (
	"context"
	"fmt"
	"testing"

	"flexfit-backend/models"
	"flexfit-backend/utils"
)

// --- Mocks ---

type MockTextGenerator struct {
	Response    string
	ShouldError bool
	LastPrompt  string
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.ShouldError {
		return "", fmt.Errorf("mock ai error")
	}
	return m.Response, nil
}

// --- Tests ---

func TestLookupParsesFencedJSON(t *testing.T) {
	gen := &MockTextGenerator{Response: "```json\n" + `{"food": "Apple", "calories": "52 kcal", "protein": "0.3 g", "carbs": "13.8 g", "fat": "0.2 g", "fiber": "2.4 g"}` + "\n```"}
	svc := NewNutritionService(gen)

	rec, err := svc.Lookup(context.Background(), "apple")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Name != "Apple" {
		t.Errorf("name = %q, want Apple", rec.Name)
	}
	if rec.Source != models.SourceGeminiAI {
		t.Errorf("source = %q, want %q", rec.Source, models.SourceGeminiAI)
	}
	if rec.Calories != 52 || rec.Protein != 0.3 || rec.Carbs != 13.8 || rec.Fat != 0.2 || rec.Fiber != 2.4 {
		t.Errorf("unexpected values: %+v", rec)
	}
}

func TestLookupRepairsSloppyJSON(t *testing.T) {
	// Unquoted key, single-quoted value and a trailing comma all at once.
	gen := &MockTextGenerator{Response: `{food: "Apple", calories: '52 kcal', "protein": "0.3 g", "carbs": "13.8 g", "fat": "0.2 g", "fiber": "2.4 g",}`}
	svc := NewNutritionService(gen)

	rec, err := svc.Lookup(context.Background(), "apple")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Source != models.SourceGeminiAI {
		t.Errorf("source = %q, want %q", rec.Source, models.SourceGeminiAI)
	}
	if rec.Calories != 52 || rec.Fiber != 2.4 {
		t.Errorf("unexpected values after repair: %+v", rec)
	}
}

func TestLookupFallsBackOnGarbage(t *testing.T) {
	gen := &MockTextGenerator{Response: "I'm sorry, I cannot help with that request."}
	svc := NewNutritionService(gen)

	rec, err := svc.Lookup(context.Background(), "mystery stew")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := utils.EstimateNutrition("mystery stew", nil)
	if rec != want {
		t.Errorf("expected the estimator record %+v, got %+v", want, rec)
	}
}

func TestLookupFallsBackOnUnparseableJSON(t *testing.T) {
	gen := &MockTextGenerator{Response: `{"food": "Apple", "calories": 52 kcal no quotes at all...}`}
	svc := NewNutritionService(gen)

	rec, err := svc.Lookup(context.Background(), "apple")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Source != models.SourceFallback {
		t.Errorf("source = %q, want %q", rec.Source, models.SourceFallback)
	}
}

// Invalid gating fields push the record through the estimator, but fields
// that did parse survive the merge.
func TestLookupMergesPartiallyValidRecord(t *testing.T) {
	gen := &MockTextGenerator{Response: `{"food": "mystery stew", "calories": "unknown", "protein": "5 g", "carbs": "20 g", "fat": "3 g", "fiber": "2 g"}`}
	svc := NewNutritionService(gen)

	rec, err := svc.Lookup(context.Background(), "mystery stew")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Source != models.SourceFallback {
		t.Errorf("source = %q, want %q", rec.Source, models.SourceFallback)
	}
	template := utils.EstimateNutrition("mystery stew", nil)
	if rec.Calories != template.Calories {
		t.Errorf("calories: want template %v, got %v", template.Calories, rec.Calories)
	}
	if rec.Protein != 5 || rec.Carbs != 20 || rec.Fat != 3 || rec.Fiber != 2 {
		t.Errorf("valid fields should survive the merge: %+v", rec)
	}
}

func TestLookupUsesQueryWhenFoodMissing(t *testing.T) {
	gen := &MockTextGenerator{Response: `{"calories": "52 kcal", "protein": "0.3 g", "carbs": "13.8 g", "fat": "0.2 g", "fiber": "2.4 g"}`}
	svc := NewNutritionService(gen)

	rec, err := svc.Lookup(context.Background(), "apple")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Name != "apple" {
		t.Errorf("name = %q, want the original query", rec.Name)
	}
}

func TestLookupSurfacesTransportFailure(t *testing.T) {
	svc := NewNutritionService(&MockTextGenerator{ShouldError: true})
	if _, err := svc.Lookup(context.Background(), "apple"); err == nil {
		t.Fatal("expected an error when the completion call fails")
	}

	svc = NewNutritionService(nil)
	if _, err := svc.Lookup(context.Background(), "apple"); err == nil {
		t.Fatal("expected an error when no generator is configured")
	}
}
