// ABOUTME: CLI commands for the user profile and daily goals.
// ABOUTME: Shows current values and applies partial updates from flags.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Show your profile, or update it with 'fittracker profile set'.

Weight (kg) and height (cm) are used for BMI on the dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printProfile(appCtx.User.Profile())
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags you pass are changed.

Examples:
  fittracker profile set --name Sam --age 34
  fittracker profile set --weight 71.5 --height 178
  fittracker profile set --goal "lose weight" --activity active`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var patch models.ProfilePatch
		if flags.Changed("name") {
			v, _ := flags.GetString("name")
			patch.Name = &v
		}
		if flags.Changed("age") {
			v, _ := flags.GetInt("age")
			if v < 0 {
				return fmt.Errorf("age cannot be negative")
			}
			patch.Age = &v
		}
		if flags.Changed("weight") {
			v, _ := flags.GetFloat64("weight")
			if v < 0 {
				return fmt.Errorf("weight cannot be negative")
			}
			patch.Weight = &v
		}
		if flags.Changed("height") {
			v, _ := flags.GetFloat64("height")
			if v < 0 {
				return fmt.Errorf("height cannot be negative")
			}
			patch.Height = &v
		}
		if flags.Changed("goal") {
			v, _ := flags.GetString("goal")
			patch.Goal = &v
		}
		if flags.Changed("activity") {
			v, _ := flags.GetString("activity")
			patch.ActivityLevel = &v
		}

		if !appCtx.User.UpdateProfile(patch) {
			return fmt.Errorf("failed to save profile")
		}
		color.Green("✓ Profile updated")
		printProfile(appCtx.User.Profile())
		return nil
	},
}

func printProfile(p models.UserProfile) {
	bmi := stats.BMI(p.Weight, p.Height)
	fmt.Printf("Name:     %s\n", p.Name)
	fmt.Printf("Age:      %d\n", p.Age)
	fmt.Printf("Weight:   %.1f kg\n", p.Weight)
	fmt.Printf("Height:   %.0f cm\n", p.Height)
	fmt.Printf("BMI:      %.1f %s\n", bmi, faint.Sprintf("(%s)", stats.BMICategory(bmi)))
	fmt.Printf("Goal:     %s\n", p.Goal)
	fmt.Printf("Activity: %s\n", p.ActivityLevel)
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or update daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		printGoals(appCtx.User.Goals())
		return nil
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update goal values",
	Long: `Update goal values. Only the flags you pass are changed.

Examples:
  fittracker goals set --calories 2200 --workout-days 5
  fittracker goals set --steps 12000 --water 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var patch models.GoalsPatch
		for name, dst := range map[string]**int{
			"steps":        &patch.DailySteps,
			"calories":     &patch.DailyCalories,
			"workout-days": &patch.WorkoutDays,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetInt(name)
				if v < 0 {
					return fmt.Errorf("%s cannot be negative", name)
				}
				*dst = &v
			}
		}
		for name, dst := range map[string]**float64{
			"water": &patch.WaterIntake,
			"sleep": &patch.SleepHours,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetFloat64(name)
				if v < 0 {
					return fmt.Errorf("%s cannot be negative", name)
				}
				*dst = &v
			}
		}

		if !appCtx.User.UpdateGoals(patch) {
			return fmt.Errorf("failed to save goals")
		}
		color.Green("✓ Goals updated")
		printGoals(appCtx.User.Goals())
		return nil
	},
}

func printGoals(g models.UserGoals) {
	fmt.Printf("Daily steps:    %d\n", g.DailySteps)
	fmt.Printf("Daily calories: %d kcal\n", g.DailyCalories)
	fmt.Printf("Water:          %.1f L\n", g.WaterIntake)
	fmt.Printf("Sleep:          %.1f h\n", g.SleepHours)
	fmt.Printf("Workout days:   %d per week\n", g.WorkoutDays)
}

func init() {
	profileSetCmd.Flags().String("name", "", "display name")
	profileSetCmd.Flags().Int("age", 0, "age in years")
	profileSetCmd.Flags().Float64("weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64("height", 0, "height in cm")
	profileSetCmd.Flags().String("goal", "", "fitness goal")
	profileSetCmd.Flags().String("activity", "", "activity level")

	goalsSetCmd.Flags().Int("steps", 0, "daily step goal")
	goalsSetCmd.Flags().Int("calories", 0, "daily calorie goal")
	goalsSetCmd.Flags().Int("workout-days", 0, "workout days per week")
	goalsSetCmd.Flags().Float64("water", 0, "daily water intake in liters")
	goalsSetCmd.Flags().Float64("sleep", 0, "nightly sleep hours")

	profileCmd.AddCommand(profileSetCmd)
	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(goalsCmd)
}
