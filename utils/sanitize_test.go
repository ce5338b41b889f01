package utils

import (
	"regexp"
	"testing"
)

func TestSanitizeNutritionValue(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		unit string
		want string
	}{
		{"keeps value and unit", "120.5 kcal", "kcal", "120.5 kcal"},
		{"appends missing unit", "52", "kcal", "52 kcal"},
		{"integer without decimal point", "52.0 kcal", "kcal", "52 kcal"},
		{"rounds to one decimal", "about 12.34 g", "g", "12.3 g"},
		{"normalizes unit spelling", "12 grams", "g", "12 g"},
		{"normalizes calories spelling", "15 calories", "kcal", "15 kcal"},
		{"preserves original unit over expected", "100 g", "kcal", "100 g"},
		{"empty string defaults grams", "", "g", "0 g"},
		{"non-numeric defaults calories", "quite a lot", "kcal", "100 kcal"},
		{"negative defaults grams", "-5 g", "g", "0 g"},
		{"negative defaults calories", "-120 kcal", "kcal", "100 kcal"},
		{"number embedded in prose", "roughly 85 kcal per serving", "kcal", "85 kcal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeNutritionValue(tc.raw, tc.unit)
			if got != tc.want {
				t.Errorf("SanitizeNutritionValue(%q, %q) = %q, want %q", tc.raw, tc.unit, got, tc.want)
			}
		})
	}
}

// Every possible input must come back as "<non-negative number> <unit>".
func TestSanitizeNutritionValueTotality(t *testing.T) {
	shape := regexp.MustCompile(`^\d+(\.\d)? (kcal|g)$`)
	inputs := []string{
		"", " ", "NaN", "-0.5", "12..5", "∞", "12,5 kcal", "kcal", "g",
		"-1", "0", "0.0001", "999999", "{\"calories\": 12}", "twelve",
	}
	for _, in := range inputs {
		for _, unit := range []string{"kcal", "g"} {
			got := SanitizeNutritionValue(in, unit)
			if !shape.MatchString(got) {
				t.Errorf("SanitizeNutritionValue(%q, %q) = %q, not shaped like a value with unit", in, unit, got)
			}
		}
	}
}

func TestParseNonNegative(t *testing.T) {
	if v, ok := ParseNonNegative("13.8 g"); !ok || v != 13.8 {
		t.Errorf("ParseNonNegative(\"13.8 g\") = %v, %v", v, ok)
	}
	if _, ok := ParseNonNegative("-1 g"); ok {
		t.Error("expected negative value to be rejected")
	}
	if _, ok := ParseNonNegative("no numbers here"); ok {
		t.Error("expected non-numeric input to be rejected")
	}
}
