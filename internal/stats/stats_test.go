package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/fittrack/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestDayTotalsFiltersByCalendarDay(t *testing.T) {
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	meals := []domain.MealLog{
		{CreatedAt: day.Add(-11 * time.Hour), TotalCalories: 400, TotalProtein: 30},
		{CreatedAt: day.Add(9 * time.Hour), TotalCalories: 700, TotalCarbs: 80},
		{CreatedAt: day.Add(-24 * time.Hour), TotalCalories: 999},
		{CreatedAt: day.Add(13 * time.Hour), TotalCalories: 999},
	}

	totals := DayTotals(meals, day)

	assert.Equal(t, 2, totals.Meals)
	assert.Equal(t, float64(1100), totals.Calories)
	assert.Equal(t, float64(30), totals.Protein)
	assert.Equal(t, float64(80), totals.Carbs)
}

func TestDayTotalsEmpty(t *testing.T) {
	totals := DayTotals(nil, time.Now())
	assert.Zero(t, totals.Meals)
	assert.Zero(t, totals.Calories)
}

func TestFoodTotalsSkipsNilMacros(t *testing.T) {
	foods := []domain.FoodItem{
		{Type: "oats", Calories: fptr(389), Protein: fptr(16.9)},
		{Type: "banana", Calories: fptr(89)},
		{Type: "water"},
	}

	totals := FoodTotals(foods)

	assert.Equal(t, float64(478), totals.Calories)
	assert.Equal(t, 16.9, totals.Protein)
	assert.Zero(t, totals.Fats)
}

func TestExerciseTotals(t *testing.T) {
	exercises := []domain.ExerciseItem{
		{Name: "squat", Sets: iptr(5), Reps: iptr(25), CaloriesBurned: fptr(120)},
		{Name: "plank", DurationMinutes: iptr(10)},
		{Name: "stretch"},
	}

	totals := ExerciseTotals(exercises)

	assert.Equal(t, 5, totals.Sets)
	assert.Equal(t, 25, totals.Reps)
	assert.Equal(t, 10, totals.DurationMinutes)
	assert.Equal(t, float64(120), totals.CaloriesBurned)
}

func TestUnitConversionRoundTrips(t *testing.T) {
	assert.InDelta(t, 180.0, InToCm(CmToIn(180.0)), 1e-9)
	assert.InDelta(t, 82.5, LbToKg(KgToLb(82.5)), 1e-9)

	assert.InDelta(t, 2.54, InToCm(1), 1e-9)
	assert.InDelta(t, 2.20462, KgToLb(1), 1e-9)
}
