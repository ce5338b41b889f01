package services

import (
	"math"
	"testing"

	"flexfit-backend/models"
)

func item(cal, prot, carbs, fat, fiber, qty float64) models.MealLineItem {
	return models.MealLineItem{
		Calories: cal,
		Protein:  prot,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
		Quantity: qty,
	}
}

func TestAggregateItemsEmpty(t *testing.T) {
	got := AggregateItems(nil)
	if got != (models.MealTotals{}) {
		t.Errorf("empty meal should total zero, got %+v", got)
	}
}

func TestAggregateItemsScalesByQuantity(t *testing.T) {
	// 52.4 * 2 = 104.8 rounds to 105
	got := AggregateItems([]models.MealLineItem{item(52.4, 0, 0, 0, 0, 2)})
	if got.Calories != 105 {
		t.Errorf("calories = %d, want 105", got.Calories)
	}
}

func TestAggregateItemsBreakfast(t *testing.T) {
	// Two apples plus a slice of toast.
	items := []models.MealLineItem{
		item(52, 0.3, 13.8, 0.2, 2.4, 2),
		item(120, 3.1, 20.5, 3.1, 1.1, 1),
	}
	got := AggregateItems(items)

	want := models.MealTotals{Calories: 224, Protein: 4, Carbs: 48, Fat: 4, Fiber: 6}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

func TestAggregateItemsOrderInvariant(t *testing.T) {
	a := item(52, 0.3, 13.8, 0.2, 2.4, 2)
	b := item(120, 3.1, 20.5, 3.1, 1.1, 1.5)
	c := item(320, 9, 30, 18, 1.5, 1)

	fwd := AggregateItems([]models.MealLineItem{a, b, c})
	rev := AggregateItems([]models.MealLineItem{c, b, a})
	if fwd != rev {
		t.Errorf("order changed the totals: %+v vs %+v", fwd, rev)
	}
}

func TestAggregateItemsBadQuantities(t *testing.T) {
	cases := []struct {
		name string
		qty  float64
	}{
		{"zero", 0},
		{"negative", -3},
		{"NaN", math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AggregateItems([]models.MealLineItem{item(100, 0, 0, 0, 0, tc.qty)})
			if got.Calories != 100 {
				t.Errorf("quantity %v should count as one serving, calories = %d", tc.qty, got.Calories)
			}
		})
	}
}

func TestAggregateItemsBadMacros(t *testing.T) {
	items := []models.MealLineItem{
		item(math.NaN(), -5, 10, math.NaN(), -1, 1),
	}
	got := AggregateItems(items)
	want := models.MealTotals{Calories: 0, Protein: 0, Carbs: 10, Fat: 0, Fiber: 0}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}
