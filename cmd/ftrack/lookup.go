package ftrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/lookup"
	"github.com/iblamekonradzuse/fitness-tracker/internal/provider/nutritionix"
	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Resolve a natural-language query to foods and log them",
	Long:  `Resolve a free-text query like "2 apples and 200 grams of chicken" through Nutritionix and log one serving of every returned food. Results are cached locally; on provider failure nothing is logged and manual entry is suggested.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)
		return withCache(func(sqldb *sql.DB) error {
			appID, apiKey, ok, err := lookup.Credentials(sqldb)
			if err != nil {
				return err
			}
			svc := &lookup.Service{DB: sqldb}
			if ok {
				svc.Client = &nutritionix.Client{AppID: appID, APIKey: apiKey}
			}
			return withTracker(func(tr *tracker.Tracker) error {
				added, err := tr.AddFromLookup(cmd.Context(), query)
				if err != nil {
					return err
				}
				if len(added) == 0 {
					if !ok {
						fmt.Fprintln(cmd.OutOrStdout(), "Nutritionix credentials are not configured; set them with 'ftrack config set nutritionix_app_id <id>' and 'ftrack config set nutritionix_api_key <key>', or add the food manually with 'ftrack food add'")
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "No results for %q; add it manually with 'ftrack food add'\n", query)
					return nil
				}
				for _, f := range added {
					fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.1f %s, %.1f kcal)\n",
						f.Name, f.Quantity, f.Unit, f.CalorieValue())
				}
				return nil
			}, tracker.WithProvider(svc))
		})
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
