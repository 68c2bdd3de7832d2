package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spec-kit/fittrack/internal/domain"
)

var (
	workoutExercises []string
	workoutPlanDayID int64
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and list workouts",
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a workout from --exercise entries",
	Long: `Log a workout. Each --exercise is
name:sets[:reps[:weight[:minutes[:calories]]]], with empty fields allowed.
Pass --plan-day to record the workout as an execution of a plan day.

Example:
  fittrack workout log --exercise "squat:5:5:100" --exercise "plank::::10"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if len(workoutExercises) == 0 {
			return fmt.Errorf("at least one --exercise required")
		}

		exercises := make([]domain.ExerciseItem, 0, len(workoutExercises))
		for _, raw := range workoutExercises {
			ex, err := parseExercise(raw)
			if err != nil {
				return err
			}
			exercises = append(exercises, ex)
		}

		var workout *domain.WorkoutLog
		var err error
		if workoutPlanDayID > 0 {
			workout, err = cli.client.CreateWorkoutFromPlan(cmd.Context(), domain.WorkoutLogFromPlanRequest{
				WorkoutPlanDayID: workoutPlanDayID,
				Exercises:        exercises,
			})
		} else {
			workout, err = cli.client.CreateWorkout(cmd.Context(), domain.WorkoutLogRequest{Exercises: exercises})
		}
		if err != nil {
			return err
		}

		fmt.Printf("workout #%d logged: %d sets, %d reps, %d min, %.0f kcal burned\n",
			workout.ID, workout.TotalSets, workout.TotalReps,
			workout.TotalDurationMinutes, workout.TotalCaloriesBurned)
		if workout.WorkoutPlanDayName != nil {
			fmt.Printf("plan day: %s\n", *workout.WorkoutPlanDayName)
		}
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged workouts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		workouts, err := cli.client.MyWorkouts(cmd.Context())
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("no workouts logged")
			return nil
		}
		for _, w := range workouts {
			line := fmt.Sprintf("#%d  %s  %d exercises, %d sets",
				w.ID, w.CreatedAt.Local().Format("2006-01-02 15:04"), len(w.Exercises), w.TotalSets)
			if w.WorkoutPlanDayName != nil {
				line += "  [" + *w.WorkoutPlanDayName + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

// parseExercise decodes name:sets[:reps[:weight[:minutes[:calories]]]].
func parseExercise(raw string) (domain.ExerciseItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 1 || parts[0] == "" {
		return domain.ExerciseItem{}, fmt.Errorf("invalid exercise %q: name required", raw)
	}
	if len(parts) > 6 {
		return domain.ExerciseItem{}, fmt.Errorf("invalid exercise %q: too many fields", raw)
	}

	ex := domain.ExerciseItem{Name: parts[0]}
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		switch i {
		case 1, 2, 4:
			val, err := strconv.Atoi(parts[i])
			if err != nil {
				return domain.ExerciseItem{}, fmt.Errorf("invalid exercise %q: %w", raw, err)
			}
			switch i {
			case 1:
				ex.Sets = &val
			case 2:
				ex.Reps = &val
			case 4:
				ex.DurationMinutes = &val
			}
		case 3, 5:
			val, err := strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return domain.ExerciseItem{}, fmt.Errorf("invalid exercise %q: %w", raw, err)
			}
			if i == 3 {
				ex.Weight = &val
			} else {
				ex.CaloriesBurned = &val
			}
		}
	}
	return ex, nil
}

func init() {
	workoutLogCmd.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "exercise entry name:sets[:reps[:weight[:minutes[:calories]]]] (repeatable)")
	workoutLogCmd.Flags().Int64Var(&workoutPlanDayID, "plan-day", 0, "workout plan day id to log against")
	workoutCmd.AddCommand(workoutLogCmd, workoutListCmd)
	rootCmd.AddCommand(workoutCmd)
}
