package ftrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Navigate and manage day records",
}

var dayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current day's log and energy balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			day, err := tr.CurrentDay()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Day %s\n", day.Date)
			for i, f := range day.Foods {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s x%.1f %s — %.1f kcal, %.1f g protein\n",
					i, f.Name, f.Quantity, f.Unit, f.CalorieValue(), f.ProteinValue())
			}
			if day.Workout != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Workout: %s, %d min, %d kcal burnt\n",
					day.Workout.Type, day.Workout.Duration, day.Workout.CaloriesBurnt)
			}
			bmr := tr.BMR()
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed: %.1f kcal\n", day.TotalCalories())
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1f g\n", day.TotalProtein())
			fmt.Fprintf(cmd.OutOrStdout(), "Net (vs BMR %.0f): %.1f kcal\n", bmr, day.NetCalories(bmr))
			return nil
		})
	},
}

var dayResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the current day's food log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.ResetDay(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared today's food log")
			return nil
		})
	},
}

var dayRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register the next calendar day and switch to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.RegisterDay(); err != nil {
				return err
			}
			date, err := tr.CurrentDate()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now on %s\n", date)
			return nil
		})
	},
}

var dayChangeCmd = &cobra.Command{
	Use:   "change <date>",
	Short: "Switch to an already-registered day (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := model.ParseDate(args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.ChangeDay(date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now on %s\n", date)
			return nil
		})
	},
}

func init() {
	dayCmd.AddCommand(dayShowCmd)
	dayCmd.AddCommand(dayResetCmd)
	dayCmd.AddCommand(dayRegisterCmd)
	dayCmd.AddCommand(dayChangeCmd)
	rootCmd.AddCommand(dayCmd)
}
