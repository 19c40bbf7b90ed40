package ftrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/lookup"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and purge the lookup cache",
}

var cacheListLimit int

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached lookup queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(sqldb *sql.DB) error {
			items, err := lookup.ListCache(sqldb, cacheListLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "QUERY\tFETCHED\tEXPIRES")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					item.Query,
					item.FetchedAt.Local().Format("2006-01-02 15:04"),
					item.ExpiresAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var (
	cachePurgeAll   bool
	cachePurgeQuery string
)

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove cached lookup results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(sqldb *sql.DB) error {
			removed, err := lookup.PurgeCache(sqldb, cachePurgeQuery, cachePurgeAll)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d cached result(s)\n", removed)
			return nil
		})
	},
}

func init() {
	cacheListCmd.Flags().IntVar(&cacheListLimit, "limit", 50, "Maximum rows to list")
	cachePurgeCmd.Flags().BoolVar(&cachePurgeAll, "all", false, "Purge every cached query")
	cachePurgeCmd.Flags().StringVar(&cachePurgeQuery, "query", "", "Purge a single cached query")

	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
