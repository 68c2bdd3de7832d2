package api

import (
	"context"

	"github.com/spec-kit/fittrack/internal/domain"
)

// CreateMeal logs a meal and returns it with server-computed totals.
func (c *Client) CreateMeal(ctx context.Context, req domain.MealLogRequest) (*domain.MealLog, error) {
	var meal domain.MealLog
	if err := c.post(ctx, "/meals", req, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// MyMeals lists the caller's logged meals, newest first.
func (c *Client) MyMeals(ctx context.Context) ([]domain.MealLog, error) {
	var meals []domain.MealLog
	if err := c.get(ctx, "/meals/mine", &meals); err != nil {
		return nil, err
	}
	return meals, nil
}
