package domain

import "time"

// ExerciseItem is a single exercise entry inside a workout log.
type ExerciseItem struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Category        *string  `json:"category"`
	DurationMinutes *int     `json:"durationMinutes"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Weight          *float64 `json:"weight"`
	CaloriesBurned  *float64 `json:"caloriesBurned"`
}

// WorkoutLogRequest is the payload for POST /workouts.
type WorkoutLogRequest struct {
	Exercises []ExerciseItem `json:"exercises"`
}

// WorkoutLogFromPlanRequest logs a workout as an execution of a plan day.
type WorkoutLogFromPlanRequest struct {
	WorkoutPlanDayID int64          `json:"workoutPlanDayId"`
	Exercises        []ExerciseItem `json:"exercises"`
}

// WorkoutLog is a logged workout with server-computed totals.
type WorkoutLog struct {
	ID                   int64          `json:"id"`
	CreatedAt            time.Time      `json:"createdAt"`
	TotalDurationMinutes int            `json:"totalDurationMinutes"`
	TotalCaloriesBurned  float64        `json:"totalCaloriesBurned"`
	TotalSets            int            `json:"totalSets"`
	TotalReps            int            `json:"totalReps"`
	WorkoutPlanDayID     *int64         `json:"workoutPlanDayId"`
	WorkoutPlanDayName   *string        `json:"workoutPlanDayName"`
	Exercises            []ExerciseItem `json:"exercises"`
}
