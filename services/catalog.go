package services

import "flexfit-backend/models"

// DefaultCatalog is the hand-written food database seeded at startup.
// Values are per standard serving.
var DefaultCatalog = []models.FoodRecord{
	{Name: "apple", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fiber: 2.4},
	{Name: "banana", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6},
	{Name: "toast", Calories: 120, Protein: 3.1, Carbs: 20.5, Fat: 3.1, Fiber: 1.1},
	{Name: "boiled egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Fiber: 0},
	{Name: "chicken breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0},
	{Name: "white rice", Calories: 205, Protein: 4.3, Carbs: 44.5, Fat: 0.4, Fiber: 0.6},
	{Name: "brown rice", Calories: 216, Protein: 5, Carbs: 44.8, Fat: 1.8, Fiber: 3.5},
	{Name: "chapati", Calories: 104, Protein: 3.1, Carbs: 18, Fat: 2.5, Fiber: 2.7},
	{Name: "dal", Calories: 198, Protein: 13.5, Carbs: 28, Fat: 4.5, Fiber: 8},
	{Name: "paneer", Calories: 265, Protein: 18.3, Carbs: 1.2, Fat: 20.8, Fiber: 0},
	{Name: "greek yogurt", Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, Fiber: 0},
	{Name: "oatmeal", Calories: 158, Protein: 6, Carbs: 27, Fat: 3.2, Fiber: 4},
	{Name: "milk", Calories: 103, Protein: 8, Carbs: 12, Fat: 2.4, Fiber: 0},
	{Name: "peanut butter", Calories: 188, Protein: 8, Carbs: 6.3, Fat: 16.1, Fiber: 1.9},
	{Name: "cucumber", Calories: 16, Protein: 0.7, Carbs: 3.6, Fat: 0.1, Fiber: 0.5},
	{Name: "spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2},
}
