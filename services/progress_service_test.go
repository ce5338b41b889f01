package services

import (
	"testing"
	"time"

	"flexfit-backend/models"
)

var loc = time.UTC

func mealAt(at time.Time, calories int) models.Meal {
	return models.Meal{
		AteAt:         at,
		TotalCalories: calories,
		TotalProtein:  10,
		TotalCarbs:    20,
		TotalFat:      5,
		TotalFiber:    3,
	}
}

func TestSummarizeUnknownPeriod(t *testing.T) {
	if _, err := Summarize(nil, "fortnight", time.Now()); err == nil {
		t.Fatal("expected an error for an unknown period")
	}
}

func TestSummarizeDay(t *testing.T) {
	ref := time.Date(2024, time.June, 12, 14, 0, 0, 0, loc)
	meals := []models.Meal{
		mealAt(time.Date(2024, time.June, 12, 8, 0, 0, 0, loc), 300),
		mealAt(time.Date(2024, time.June, 12, 20, 0, 0, 0, loc), 500),
		// Next midnight is outside the half-open window.
		mealAt(time.Date(2024, time.June, 13, 0, 0, 0, 0, loc), 999),
	}

	sum, err := Summarize(meals, PeriodDay, ref)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Labels) != 1 || sum.Labels[0] != "2024-06-12" {
		t.Errorf("labels = %v", sum.Labels)
	}
	if sum.Calories[0] != 800 {
		t.Errorf("calories = %v, want 800", sum.Calories[0])
	}
	if sum.Protein[0] != 20 {
		t.Errorf("protein = %v, want 20", sum.Protein[0])
	}
}

func TestSummarizeWeekZeroData(t *testing.T) {
	sum, err := Summarize(nil, PeriodWeek, time.Date(2024, time.June, 12, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatal(err)
	}
	wantLabels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if len(sum.Labels) != 7 {
		t.Fatalf("labels = %v, want 7 weekday labels", sum.Labels)
	}
	for i, l := range wantLabels {
		if sum.Labels[i] != l {
			t.Errorf("label[%d] = %q, want %q", i, sum.Labels[i], l)
		}
		if sum.Calories[i] != 0 || sum.Fiber[i] != 0 {
			t.Errorf("bucket %d should be zero with no meals", i)
		}
	}
}

func TestSummarizeWeekBoundaries(t *testing.T) {
	// Wednesday June 12, 2024. The week starts Sunday June 9.
	ref := time.Date(2024, time.June, 12, 10, 0, 0, 0, loc)
	weekStart := time.Date(2024, time.June, 9, 0, 0, 0, 0, loc)

	meals := []models.Meal{
		mealAt(weekStart, 100),                       // exactly at the boundary, included
		mealAt(weekStart.Add(-time.Nanosecond), 999), // just before, excluded
		mealAt(time.Date(2024, time.June, 12, 9, 0, 0, 0, loc), 250), // Wednesday
	}

	sum, err := Summarize(meals, PeriodWeek, ref)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Calories[0] != 100 {
		t.Errorf("Sunday = %v, want 100", sum.Calories[0])
	}
	if sum.Calories[3] != 250 {
		t.Errorf("Wednesday = %v, want 250", sum.Calories[3])
	}
	var total float64
	for _, c := range sum.Calories {
		total += c
	}
	if total != 350 {
		t.Errorf("week total = %v, the pre-window meal leaked in", total)
	}
}

func TestSummarizeMonthChunkAverages(t *testing.T) {
	// June 2024 has 30 days: four 7-day chunks and a final 2-day chunk.
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, loc)

	meals := []models.Meal{
		mealAt(time.Date(2024, time.June, 3, 12, 0, 0, 0, loc), 700), // chunk 1
		mealAt(time.Date(2024, time.June, 29, 12, 0, 0, 0, loc), 700), // chunk 5
		mealAt(time.Date(2024, time.June, 30, 12, 0, 0, 0, loc), 700), // chunk 5
	}

	sum, err := Summarize(meals, PeriodMonth, ref)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Labels) != 5 || sum.Labels[0] != "Week 1" || sum.Labels[4] != "Week 5" {
		t.Fatalf("labels = %v", sum.Labels)
	}
	if sum.Calories[0] != 100 {
		t.Errorf("week 1 = %v, want 700/7 = 100", sum.Calories[0])
	}
	// The last chunk only holds June 29-30, so divide by 2, not 7.
	if sum.Calories[4] != 700 {
		t.Errorf("week 5 = %v, want 1400/2 = 700", sum.Calories[4])
	}
	if sum.Calories[1] != 0 || sum.Calories[2] != 0 || sum.Calories[3] != 0 {
		t.Errorf("empty chunks should be zero: %v", sum.Calories)
	}
}

func TestSummarizeYearDistinctDayAverages(t *testing.T) {
	ref := time.Date(2024, time.March, 1, 0, 0, 0, 0, loc)

	meals := []models.Meal{
		// March: two meals on the 5th plus one on the 10th is two logged days.
		mealAt(time.Date(2024, time.March, 5, 8, 0, 0, 0, loc), 500),
		mealAt(time.Date(2024, time.March, 5, 19, 0, 0, 0, loc), 300),
		mealAt(time.Date(2024, time.March, 10, 13, 0, 0, 0, loc), 400),
	}

	sum, err := Summarize(meals, PeriodYear, ref)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Labels) != 12 || sum.Labels[0] != "Jan" || sum.Labels[11] != "Dec" {
		t.Fatalf("labels = %v", sum.Labels)
	}
	if sum.Calories[2] != 600 {
		t.Errorf("March = %v, want 1200/2 = 600", sum.Calories[2])
	}
	for i, c := range sum.Calories {
		if i != 2 && c != 0 {
			t.Errorf("month %s should be zero, got %v", sum.Labels[i], c)
		}
	}
}

func TestWeekStartIsSunday(t *testing.T) {
	for d := 9; d <= 15; d++ {
		got := weekStart(time.Date(2024, time.June, d, 23, 30, 0, 0, loc))
		want := time.Date(2024, time.June, 9, 0, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("weekStart(June %d) = %v, want %v", d, got, want)
		}
	}
}
