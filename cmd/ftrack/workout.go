package ftrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage the current day's workout",
}

var (
	workoutType     string
	workoutDuration int
	workoutCalories int
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a workout (replaces any workout already logged today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := model.ParseWorkoutType(workoutType)
		if err != nil {
			return err
		}
		if workoutDuration <= 0 {
			return fmt.Errorf("--duration must be > 0 minutes")
		}
		workout := model.NewWorkout(kind, workoutDuration)
		if kind == model.WorkoutCardio {
			workout.SetCardioCalories(workoutCalories)
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddWorkout(workout); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %d min (%d kcal burnt)\n",
				workout.Type, workout.Duration, workout.CaloriesBurnt)
			return nil
		})
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current day's workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			day, err := tr.CurrentDay()
			if err != nil {
				return err
			}
			if day.Workout == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No workout recorded today")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d min, %d kcal burnt\n",
				day.Workout.Type, day.Workout.Duration, day.Workout.CaloriesBurnt)
			return nil
		})
	},
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type (weightlifting or cardio)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	workoutAddCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Calories burnt (cardio only)")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	rootCmd.AddCommand(workoutCmd)
}
