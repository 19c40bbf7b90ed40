package ftrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate reports over the day log",
}

var reportWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show calories, protein and workouts for the trailing 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			week, err := tr.WeekWindow()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tKCAL\tPROTEIN\tWORKOUT")
			for _, e := range week {
				workout := "-"
				if e.Workout != nil {
					workout = fmt.Sprintf("%s %dmin (%d kcal)", e.Workout.Type, e.Workout.Duration, e.Workout.CaloriesBurnt)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%.1f\t%s\n", e.Date, e.Calories, e.Protein, workout)
			}
			return nil
		})
	},
}

func init() {
	reportCmd.AddCommand(reportWeekCmd)
	rootCmd.AddCommand(reportCmd)
}
