package ftrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iblamekonradzuse/fitness-tracker/internal/model"
	"github.com/iblamekonradzuse/fitness-tracker/internal/tracker"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile behind BMI/BMR calculations",
}

var (
	profileHeight float64
	profileWeight float64
	profileAge    int
	profileGender string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set height, weight, age and gender",
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := model.ParseGender(profileGender)
		if err != nil {
			return err
		}
		if profileHeight <= 0 || profileWeight <= 0 || profileAge <= 0 {
			return fmt.Errorf("--height, --weight and --age must be > 0")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			tr.SetProfile(model.Profile{
				HeightCm: profileHeight,
				WeightKg: profileWeight,
				Age:      profileAge,
				Gender:   gender,
			})
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			p := tr.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\nWeight: %.1f kg\nAge: %d\nGender: %s\n",
				p.HeightCm, p.WeightKg, p.Age, p.Gender)
			return nil
		})
	},
}

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute body mass index from the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			bmi := tr.BMI()
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f (%s)\n", bmi, model.ClassifyBMI(bmi))
			return nil
		})
	},
}

var bmrCmd = &cobra.Command{
	Use:   "bmr",
	Short: "Compute basal metabolic rate from the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %.0f kcal/day\n", tr.BMR())
			return nil
		})
	},
}

var proteinWorkouts int

var proteinCmd = &cobra.Command{
	Use:   "protein",
	Short: "Recommend daily protein for your training volume",
	RunE: func(cmd *cobra.Command, args []string) error {
		if proteinWorkouts < 0 {
			return fmt.Errorf("--workouts must be >= 0")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Recommended protein: %.1f g/day\n", tr.RecommendedProtein(proteinWorkouts))
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in centimeters")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kilograms")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male or female)")

	proteinCmd.Flags().IntVar(&proteinWorkouts, "workouts", 0, "Workouts per week")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(bmiCmd)
	rootCmd.AddCommand(bmrCmd)
	rootCmd.AddCommand(proteinCmd)
}
