// Package stats holds the client-side arithmetic the UI layers on top of
// server data: nutrition day totals, workout totals and unit conversion.
package stats

import (
	"time"

	"github.com/spec-kit/fittrack/internal/domain"
)

// NutritionTotals aggregates macros across meals.
type NutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Meals    int
}

// DayTotals sums the totals of every meal logged on the same calendar day
// as day, in day's location.
func DayTotals(meals []domain.MealLog, day time.Time) NutritionTotals {
	var totals NutritionTotals
	for _, meal := range meals {
		if !sameDay(meal.CreatedAt.In(day.Location()), day) {
			continue
		}
		totals.Calories += meal.TotalCalories
		totals.Protein += meal.TotalProtein
		totals.Carbs += meal.TotalCarbs
		totals.Fats += meal.TotalFats
		totals.Meals++
	}
	return totals
}

// FoodTotals sums the non-nil macro fields across food items, the same
// computation the backend applies when it stores a meal.
func FoodTotals(foods []domain.FoodItem) NutritionTotals {
	var totals NutritionTotals
	for _, food := range foods {
		totals.Calories += deref(food.Calories)
		totals.Protein += deref(food.Protein)
		totals.Carbs += deref(food.Carbs)
		totals.Fats += deref(food.Fats)
	}
	return totals
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
