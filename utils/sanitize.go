package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`-?\d+(\.\d+)?`)
	unitRe   = regexp.MustCompile(`(?i)\b(kcal|cal(?:orie)?s?|g(?:ram)?s?)\b`)
)

// ParseNonNegative extracts the first numeric substring of s and returns it
// when it is a valid non-negative number.
func ParseNonNegative(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0, false
	}
	return v, true
}

// SanitizeNutritionValue normalizes a free-text nutrition value such as
// "120.5 kcal" or "about 12g" into "<number> <unit>". Input without a usable
// non-negative number falls back to a unit-appropriate default ("100 kcal"
// for calories, "0 <unit>" otherwise). Integers are rendered without a
// decimal point, everything else is rounded to one decimal. The unit already
// present in the input is kept; the expected unit is appended only when the
// input carried none. Total over all inputs, never panics.
func SanitizeNutritionValue(raw, expectedUnit string) string {
	v, ok := ParseNonNegative(raw)
	if !ok {
		if expectedUnit == "kcal" {
			return "100 kcal"
		}
		return "0 " + expectedUnit
	}

	unit := expectedUnit
	if m := unitRe.FindString(raw); m != "" {
		unit = canonicalUnit(m)
	}
	return formatMagnitude(v) + " " + unit
}

func canonicalUnit(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw))[0] {
	case 'g':
		return "g"
	default:
		return "kcal"
	}
}

func formatMagnitude(v float64) string {
	r := math.Round(v*10) / 10
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}
