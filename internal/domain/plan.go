package domain

import "time"

// ExerciseCategory groups exercises by muscle group or modality.
type ExerciseCategory string

const (
	CategoryBack       ExerciseCategory = "BACK"
	CategoryChest      ExerciseCategory = "CHEST"
	CategoryBiceps     ExerciseCategory = "BICEPS"
	CategoryTriceps    ExerciseCategory = "TRICEPS"
	CategoryShoulders  ExerciseCategory = "SHOULDERS"
	CategoryHamstrings ExerciseCategory = "HAMSTRINGS"
	CategoryQuads      ExerciseCategory = "QUADS"
	CategoryGlutes     ExerciseCategory = "GLUTES"
	CategoryCalves     ExerciseCategory = "CALVES"
	CategoryCore       ExerciseCategory = "CORE"
	CategoryCardio     ExerciseCategory = "CARDIO"
	CategoryOther      ExerciseCategory = "OTHER"
)

// ExerciseCategories lists all categories in display order.
func ExerciseCategories() []ExerciseCategory {
	return []ExerciseCategory{
		CategoryBack, CategoryChest, CategoryBiceps, CategoryTriceps,
		CategoryShoulders, CategoryHamstrings, CategoryQuads, CategoryGlutes,
		CategoryCalves, CategoryCore, CategoryCardio, CategoryOther,
	}
}

// PredefinedExercise is a catalog exercise offered by the exercise picker.
type PredefinedExercise struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category ExerciseCategory `json:"category"`
}

// WorkoutPlanExercise is an exercise slot within a plan day, with targets.
type WorkoutPlanExercise struct {
	ID           string            `json:"id,omitempty"`
	Name         string            `json:"name"`
	Category     *ExerciseCategory `json:"category"`
	IsCustom     bool              `json:"isCustom"`
	TargetSets   *int              `json:"targetSets"`
	TargetReps   *int              `json:"targetReps"`
	TargetWeight *float64          `json:"targetWeight"`
}

// WorkoutPlanDay is one named day of a plan.
type WorkoutPlanDay struct {
	ID        int64                 `json:"id,omitempty"`
	ClientID  string                `json:"clientId,omitempty"`
	DayNumber int                   `json:"dayNumber"`
	DayName   string                `json:"dayName"`
	Exercises []WorkoutPlanExercise `json:"exercises"`
}

// WorkoutPlanRequest is the payload for creating or replacing a plan.
type WorkoutPlanRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Days        []WorkoutPlanDay `json:"days"`
}

// WorkoutPlan is a stored workout plan.
type WorkoutPlan struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	CreatedAt   time.Time        `json:"createdAt"`
	Days        []WorkoutPlanDay `json:"days"`
}
