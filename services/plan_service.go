package services

import (
	"fmt"
	"sort"
	"strings"
)

// PlannedMeal is one slot of a static diet-plan template.
type PlannedMeal struct {
	Type           string   `json:"type"`
	Foods          []string `json:"foods"`
	ApproxCalories int      `json:"approx_calories"`
}

// DietPlan is a fixed template keyed by fitness goal. Plans are static
// content, generated deterministically with no AI involved.
type DietPlan struct {
	Goal          string        `json:"goal"`
	DailyCalories int           `json:"daily_calories"`
	Meals         []PlannedMeal `json:"meals"`
}

var dietPlans = map[string]DietPlan{
	"weight-loss": {
		Goal:          "weight-loss",
		DailyCalories: 1600,
		Meals: []PlannedMeal{
			{Type: "breakfast", Foods: []string{"oatmeal", "apple", "green tea"}, ApproxCalories: 320},
			{Type: "lunch", Foods: []string{"grilled chicken salad", "brown rice"}, ApproxCalories: 520},
			{Type: "snack", Foods: []string{"cucumber sticks", "greek yogurt"}, ApproxCalories: 180},
			{Type: "dinner", Foods: []string{"baked fish", "steamed broccoli", "quinoa"}, ApproxCalories: 580},
		},
	},
	"muscle-gain": {
		Goal:          "muscle-gain",
		DailyCalories: 2800,
		Meals: []PlannedMeal{
			{Type: "breakfast", Foods: []string{"eggs", "whole wheat toast", "banana", "milk"}, ApproxCalories: 650},
			{Type: "lunch", Foods: []string{"chicken breast", "rice", "lentils"}, ApproxCalories: 850},
			{Type: "snack", Foods: []string{"peanut butter sandwich", "protein shake"}, ApproxCalories: 500},
			{Type: "dinner", Foods: []string{"paneer", "chapati", "mixed vegetables"}, ApproxCalories: 800},
		},
	},
	"maintenance": {
		Goal:          "maintenance",
		DailyCalories: 2200,
		Meals: []PlannedMeal{
			{Type: "breakfast", Foods: []string{"poha", "orange juice"}, ApproxCalories: 450},
			{Type: "lunch", Foods: []string{"dal", "rice", "salad"}, ApproxCalories: 700},
			{Type: "snack", Foods: []string{"mixed nuts", "fruit"}, ApproxCalories: 300},
			{Type: "dinner", Foods: []string{"vegetable curry", "chapati"}, ApproxCalories: 750},
		},
	},
}

type PlanService struct{}

func NewPlanService() *PlanService { return &PlanService{} }

func (s *PlanService) Goals() []string {
	goals := make([]string, 0, len(dietPlans))
	for g := range dietPlans {
		goals = append(goals, g)
	}
	sort.Strings(goals)
	return goals
}

func (s *PlanService) PlanForGoal(goal string) (*DietPlan, error) {
	plan, ok := dietPlans[strings.ToLower(strings.TrimSpace(goal))]
	if !ok {
		return nil, fmt.Errorf("no plan for goal %q", goal)
	}
	return &plan, nil
}
