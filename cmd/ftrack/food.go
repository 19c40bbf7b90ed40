package ftrack

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the current day's food log",
}

var (
	foodName     string
	foodQuantity float64
	foodUnit     string
	foodProtein  float64
	foodFat      float64
	foodCarbs    float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food to the current day",
	RunE: func(cmd *cobra.Command, args []string) error {
		if foodName == "" {
			return fmt.Errorf("--name is required")
		}
		// Manual entries store the macro-derived per-serving figure so the
		// log file stays self-describing.
		calories := math.Round((foodProtein*4+foodFat*9+foodCarbs*4)*10) / 10
		food := model.NewFood(foodName, 1, foodUnit, foodProtein, foodFat, foodCarbs, calories)
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddFood(food, foodQuantity); err != nil {
				return err
			}
			scaled := food
			scaled.Quantity = foodQuantity
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s x%.1f (%.1f kcal)\n", food.Name, foodQuantity, scaled.CalorieValue())
			return nil
		})
	},
}

var repeatQuantity float64

var foodRepeatCmd = &cobra.Command{
	Use:   "repeat <query>",
	Short: "Re-log the best fuzzy match from your food history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)
		return withTracker(func(tr *tracker.Tracker) error {
			results := tr.SearchFood(query)
			if len(results) == 0 {
				return fmt.Errorf("no food in history matches %q", query)
			}
			best := results[0].Food
			if err := tr.AddFood(best, repeatQuantity); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s x%.1f\n", best.Name, repeatQuantity)
			return nil
		})
	},
}

var foodRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a food from the current day by list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg("food index", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.RemoveFood(index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed food %d\n", index)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current day's foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			day, err := tr.CurrentDay()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "IDX\tNAME\tQTY\tUNIT\tKCAL\tPROTEIN")
			for i, f := range day.Foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f\t%s\t%.1f\t%.1f\n",
					i, f.Name, f.Quantity, f.Unit, f.CalorieValue(), f.ProteinValue())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.1f kcal, %.1f g protein\n", day.TotalCalories(), day.TotalProtein())
			return nil
		})
	},
}

func init() {
	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodQuantity, "quantity", 1, "Quantity multiplier")
	foodAddCmd.Flags().StringVar(&foodUnit, "unit", "serving", "Display unit")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per serving")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per serving")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbohydrate grams per serving")

	foodRepeatCmd.Flags().Float64Var(&repeatQuantity, "quantity", 1, "Quantity multiplier")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodRepeatCmd)
	foodCmd.AddCommand(foodRemoveCmd)
	foodCmd.AddCommand(foodListCmd)
	rootCmd.AddCommand(foodCmd)
}
