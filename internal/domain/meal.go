package domain

import "time"

// FoodItem is a single food entry inside a meal log. Numeric fields are
// nullable: the user may log a food without full macro information.
type FoodItem struct {
	ID       string   `json:"id,omitempty"`
	Type     string   `json:"type"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
}

// MealLogRequest is the payload for POST /meals.
type MealLogRequest struct {
	Foods []FoodItem `json:"foods"`
}

// MealLog is a logged meal with server-computed totals.
type MealLog struct {
	ID            int64      `json:"id"`
	CreatedAt     time.Time  `json:"createdAt"`
	TotalCalories float64    `json:"totalCalories"`
	TotalProtein  float64    `json:"totalProtein"`
	TotalCarbs    float64    `json:"totalCarbs"`
	TotalFats     float64    `json:"totalFats"`
	Foods         []FoodItem `json:"foods"`
}
