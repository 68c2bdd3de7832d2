package api

import (
	"context"

	"github.com/spec-kit/fittrack/internal/domain"
)

// CreateWorkout logs a free-form workout.
func (c *Client) CreateWorkout(ctx context.Context, req domain.WorkoutLogRequest) (*domain.WorkoutLog, error) {
	var workout domain.WorkoutLog
	if err := c.post(ctx, "/workouts", req, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// CreateWorkoutFromPlan logs a workout as an execution of a plan day.
func (c *Client) CreateWorkoutFromPlan(ctx context.Context, req domain.WorkoutLogFromPlanRequest) (*domain.WorkoutLog, error) {
	var workout domain.WorkoutLog
	if err := c.post(ctx, "/workouts/from-plan", req, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// MyWorkouts lists the caller's logged workouts, newest first.
func (c *Client) MyWorkouts(ctx context.Context) ([]domain.WorkoutLog, error) {
	var workouts []domain.WorkoutLog
	if err := c.get(ctx, "/workouts/mine", &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}
