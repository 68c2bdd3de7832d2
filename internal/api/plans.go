package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spec-kit/fittrack/internal/domain"
)

// CreateWorkoutPlan stores a new workout plan.
func (c *Client) CreateWorkoutPlan(ctx context.Context, req domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	if err := c.post(ctx, "/workout-plans", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// MyWorkoutPlans lists the caller's plans.
func (c *Client) MyWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	var plans []domain.WorkoutPlan
	if err := c.get(ctx, "/workout-plans/mine", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// WorkoutPlan fetches one plan by id.
func (c *Client) WorkoutPlan(ctx context.Context, id int64) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	if err := c.get(ctx, fmt.Sprintf("/workout-plans/%d", id), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateWorkoutPlan replaces a plan's content.
func (c *Client) UpdateWorkoutPlan(ctx context.Context, id int64, req domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	if err := c.put(ctx, fmt.Sprintf("/workout-plans/%d", id), req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteWorkoutPlan removes a plan.
func (c *Client) DeleteWorkoutPlan(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/workout-plans/%d", id))
}

// WorkoutPlanDay fetches a single plan day, as used when executing a
// planned workout.
func (c *Client) WorkoutPlanDay(ctx context.Context, dayID int64) (*domain.WorkoutPlanDay, error) {
	var day domain.WorkoutPlanDay
	if err := c.get(ctx, fmt.Sprintf("/workout-plans/days/%d", dayID), &day); err != nil {
		return nil, err
	}
	return &day, nil
}

// PredefinedExercises lists the exercise catalog, optionally filtered by
// category.
func (c *Client) PredefinedExercises(ctx context.Context, category *domain.ExerciseCategory) ([]domain.PredefinedExercise, error) {
	path := "/exercises/predefined"
	if category != nil {
		path += "?category=" + url.QueryEscape(string(*category))
	}
	var exercises []domain.PredefinedExercise
	if err := c.get(ctx, path, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// ExerciseCategories lists the known exercise categories.
func (c *Client) ExerciseCategories(ctx context.Context) ([]domain.ExerciseCategory, error) {
	var categories []domain.ExerciseCategory
	if err := c.get(ctx, "/exercises/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
