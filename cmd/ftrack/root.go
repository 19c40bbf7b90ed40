package ftrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	logPath   string
	statePath string
	cachePath string
)

var rootCmd = &cobra.Command{
	Use:   "ftrack",
	Short: "ftrack logs daily food and workouts from your terminal",
	Long:  "ftrack is a local-first daily food and workout log with fuzzy search over past foods, a Nutritionix-backed lookup, and BMI/BMR metrics.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "file", "", "Path to the day log JSON file")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Path to the profile/state file")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache-db", "", "Path to the lookup cache database")
}
