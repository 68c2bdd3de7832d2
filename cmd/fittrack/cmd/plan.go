package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/fittrack/internal/domain"
)

var (
	planFile         string
	exerciseCategory string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage workout plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a plan from a JSON file",
	Long: `Create a workout plan from a JSON file describing its days.

Example file:
  {
    "name": "Push Pull Legs",
    "days": [
      {"dayNumber": 1, "dayName": "Push",
       "exercises": [{"name": "Bench Press", "category": "CHEST",
                      "targetSets": 4, "targetReps": 8}]}
    ]
  }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		req, err := readPlanFile(planFile)
		if err != nil {
			return err
		}

		plan, err := cli.client.CreateWorkoutPlan(cmd.Context(), *req)
		if err != nil {
			return err
		}
		fmt.Printf("plan #%d %q created with %d days\n", plan.ID, plan.Name, len(plan.Days))
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		plans, err := cli.client.MyWorkoutPlans(cmd.Context())
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("no plans")
			return nil
		}
		for _, plan := range plans {
			fmt.Printf("#%d  %s  (%d days)\n", plan.ID, plan.Name, len(plan.Days))
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one plan in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		plan, err := cli.client.WorkoutPlan(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("#%d %s\n", plan.ID, plan.Name)
		if plan.Description != nil {
			fmt.Println(*plan.Description)
		}
		for _, day := range plan.Days {
			fmt.Printf("  day %d: %s (id %d)\n", day.DayNumber, day.DayName, day.ID)
			for _, ex := range day.Exercises {
				line := "    " + ex.Name
				if ex.TargetSets != nil && ex.TargetReps != nil {
					line += fmt.Sprintf("  %dx%d", *ex.TargetSets, *ex.TargetReps)
				}
				if ex.TargetWeight != nil {
					line += fmt.Sprintf(" @ %.1fkg", *ex.TargetWeight)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

var planUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a plan's content from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		req, err := readPlanFile(planFile)
		if err != nil {
			return err
		}

		plan, err := cli.client.UpdateWorkoutPlan(cmd.Context(), id, *req)
		if err != nil {
			return err
		}
		fmt.Printf("plan #%d updated\n", plan.ID)
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		if err := cli.client.DeleteWorkoutPlan(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("plan #%d deleted\n", id)
		return nil
	},
}

var planExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the predefined exercise catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		var category *domain.ExerciseCategory
		if exerciseCategory != "" {
			cat := domain.ExerciseCategory(exerciseCategory)
			category = &cat
		}

		exercises, err := cli.client.PredefinedExercises(cmd.Context(), category)
		if err != nil {
			return err
		}
		for _, ex := range exercises {
			fmt.Printf("%-12s %s\n", ex.Category, ex.Name)
		}
		return nil
	},
}

func readPlanFile(path string) (*domain.WorkoutPlanRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("--file required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	var req domain.WorkoutPlanRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("plan file: name required")
	}
	return &req, nil
}

func init() {
	planCreateCmd.Flags().StringVar(&planFile, "file", "", "JSON file describing the plan")
	planUpdateCmd.Flags().StringVar(&planFile, "file", "", "JSON file describing the plan")
	planExercisesCmd.Flags().StringVar(&exerciseCategory, "category", "", "filter by category (e.g. CHEST)")
	planCmd.AddCommand(planCreateCmd, planListCmd, planShowCmd, planUpdateCmd, planDeleteCmd, planExercisesCmd)
	rootCmd.AddCommand(planCmd)
}
