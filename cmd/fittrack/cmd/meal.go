package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/fittrack/internal/domain"
	"github.com/spec-kit/fittrack/internal/stats"
)

var mealFoods []string

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and list meals",
}

var mealLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal from --food entries",
	Long: `Log a meal. Each --food is name:calories[:protein[:carbs[:fats]]],
with empty fields allowed for unknown macros.

Example:
  fittrack meal log --food "oats:389:16.9:66.3:6.9" --food "banana:89"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if len(mealFoods) == 0 {
			return fmt.Errorf("at least one --food required")
		}

		foods := make([]domain.FoodItem, 0, len(mealFoods))
		for _, raw := range mealFoods {
			food, err := parseFood(raw)
			if err != nil {
				return err
			}
			foods = append(foods, food)
		}

		meal, err := cli.client.CreateMeal(cmd.Context(), domain.MealLogRequest{Foods: foods})
		if err != nil {
			return err
		}
		fmt.Printf("meal #%d logged: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fats\n",
			meal.ID, meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFats)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		meals, err := cli.client.MyMeals(cmd.Context())
		if err != nil {
			return err
		}
		if len(meals) == 0 {
			fmt.Println("no meals logged")
			return nil
		}
		for _, meal := range meals {
			fmt.Printf("#%d  %s  %.0f kcal  (%d foods)\n",
				meal.ID, meal.CreatedAt.Local().Format("2006-01-02 15:04"),
				meal.TotalCalories, len(meal.Foods))
		}
		return nil
	},
}

var mealTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's nutrition totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		meals, err := cli.client.MyMeals(cmd.Context())
		if err != nil {
			return err
		}
		totals := stats.DayTotals(meals, time.Now())
		fmt.Printf("today: %d meals, %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fats\n",
			totals.Meals, totals.Calories, totals.Protein, totals.Carbs, totals.Fats)
		return nil
	},
}

// parseFood decodes name:calories[:protein[:carbs[:fats]]]. Empty numeric
// fields stay nil.
func parseFood(raw string) (domain.FoodItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 1 || parts[0] == "" {
		return domain.FoodItem{}, fmt.Errorf("invalid food %q: name required", raw)
	}
	if len(parts) > 5 {
		return domain.FoodItem{}, fmt.Errorf("invalid food %q: too many fields", raw)
	}

	food := domain.FoodItem{Type: parts[0]}
	targets := []**float64{nil, &food.Calories, &food.Protein, &food.Carbs, &food.Fats}
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		val, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return domain.FoodItem{}, fmt.Errorf("invalid food %q: %w", raw, err)
		}
		*targets[i] = &val
	}
	return food, nil
}

func init() {
	mealLogCmd.Flags().StringArrayVar(&mealFoods, "food", nil, "food entry name:calories[:protein[:carbs[:fats]]] (repeatable)")
	mealCmd.AddCommand(mealLogCmd, mealListCmd, mealTodayCmd)
	rootCmd.AddCommand(mealCmd)
}
