package stats

import "github.com/spec-kit/fittrack/internal/domain"

// WorkoutTotals aggregates effort across exercises.
type WorkoutTotals struct {
	DurationMinutes int
	Sets            int
	Reps            int
	CaloriesBurned  float64
}

// ExerciseTotals sums the non-nil fields across exercise items, matching
// the totals the backend stores on a workout log.
func ExerciseTotals(exercises []domain.ExerciseItem) WorkoutTotals {
	var totals WorkoutTotals
	for _, ex := range exercises {
		if ex.DurationMinutes != nil {
			totals.DurationMinutes += *ex.DurationMinutes
		}
		if ex.Sets != nil {
			totals.Sets += *ex.Sets
		}
		if ex.Reps != nil {
			totals.Reps += *ex.Reps
		}
		if ex.CaloriesBurned != nil {
			totals.CaloriesBurned += *ex.CaloriesBurned
		}
	}
	return totals
}
