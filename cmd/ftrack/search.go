package ftrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search every food you have ever logged",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)
		return withTracker(func(tr *tracker.Tracker) error {
			results := tr.SearchFood(query)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q\n", query)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "SCORE\tNAME\tKCAL\tPROTEIN\tFAT\tCARBS")
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\n",
					r.Score, r.Food.Name, r.Food.CalorieValue(), r.Food.Protein, r.Food.Fat, r.Food.Carbs)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
