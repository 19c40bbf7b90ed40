package ftrack

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/lookup"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tool configuration (Nutritionix credentials)",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(sqldb *sql.DB) error {
			if err := lookup.SetConfig(sqldb, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(sqldb *sql.DB) error {
			value, found, err := lookup.GetConfig(sqldb, args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("config key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(sqldb *sql.DB) error {
			all, err := lookup.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, all[k])
			}
			return nil
		})
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
