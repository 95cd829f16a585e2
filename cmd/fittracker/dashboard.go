// ABOUTME: CLI commands for the dashboard and overall app statistics.
// ABOUTME: Renders today's activity, level progress, fitness score, and recommendations.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/spf13/cobra"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show today's activity and overall progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := appCtx.Tracker.Dashboard()
		if dashboardJSON {
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal dashboard: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		color.Cyan("%s, %s", d.Profile.Name, d.Date.Format("Monday Jan 2"))
		fmt.Println()

		fmt.Println("TODAY")
		fmt.Printf("  Workouts:   %d  (%d kcal burned, %s)\n",
			d.Workouts.Workouts, d.Workouts.CaloriesBurned, formatMinutes(d.Workouts.Duration))
		if d.Workouts.Workouts > 0 {
			fmt.Printf("  Heart rate: %d bpm avg\n", d.Workouts.AvgHeartRate)
		}
		fmt.Printf("  Calories:   %.0f / %d kcal %s\n",
			d.Nutrition.Calories, d.Goals.DailyCalories, progressBar(d.CalorieGoalPercent, 20))
		fmt.Printf("  Macros:     protein %d%%  carbs %d%%  fat %d%%\n",
			d.Macros.Protein, d.Macros.Carbs, d.Macros.Fat)
		fmt.Println()

		fmt.Println("PROGRESS")
		fmt.Printf("  Level %d    %s %d/%d XP\n",
			d.Level.Level, progressBar(d.Level.Percent, 20), d.Level.XP-d.Level.LevelStart, d.Level.NextLevelXP-d.Level.LevelStart)
		fmt.Printf("  Streak:     %d days (best %d)\n", d.Stats.CurrentStreak, d.Stats.LongestStreak)
		fmt.Printf("  Workouts:   %d total, %d kcal\n", d.Stats.TotalWorkouts, d.Stats.TotalCaloriesBurned)
		fmt.Printf("  BMI:        %.1f %s\n", d.BMI, faint.Sprintf("(%s)", d.BMICategory))
		fmt.Println()

		printScore(d.Score)
		if len(d.Recommendations) > 0 {
			fmt.Println()
			fmt.Println("RECOMMENDATIONS")
			for _, r := range d.Recommendations {
				fmt.Printf("  • %s %s\n", r.Title, faint.Sprintf("[%s]", r.Priority))
				fmt.Printf("    %s\n", faint.Sprint(r.Description))
			}
		}

		if len(d.RecentAchievements) > 0 {
			fmt.Println()
			fmt.Println("RECENT ACHIEVEMENTS")
			for _, a := range d.RecentAchievements {
				fmt.Printf("  %s %s %s\n", a.Icon, a.Title, faint.Sprint(a.UnlockedAt.Format("2006-01-02")))
			}
		}
		return nil
	},
}

func printScore(sc stats.Score) {
	fmt.Printf("FITNESS SCORE  %d/100\n", sc.Total)
	fmt.Printf("  Consistency  %s %d\n", progressBar(float64(sc.Consistency), 20), sc.Consistency)
	fmt.Printf("  Activity     %s %d\n", progressBar(float64(sc.Activity), 20), sc.Activity)
	fmt.Printf("  Nutrition    %s %d\n", progressBar(float64(sc.Nutrition), 20), sc.Nutrition)
	fmt.Printf("  Achievements %s %d\n", progressBar(float64(sc.Achievements), 20), sc.Achievements)
}

func formatMinutes(seconds int) string {
	return fmt.Sprintf("%d min", seconds/60)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals for everything stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := appCtx.Tracker.AppStatistics()
		fmt.Printf("Workouts:      %d\n", s.TotalWorkouts)
		fmt.Printf("Meals:         %d\n", s.TotalMeals)
		fmt.Printf("Achievements:  %d\n", s.TotalAchievements)
		fmt.Printf("Level:         %d (%d XP)\n", s.Level, s.XP)
		fmt.Printf("Streak:        %d days (best %d)\n", s.CurrentStreak, s.LongestStreak)
		fmt.Printf("Member since:  %s\n", s.JoinDate.Format("2006-01-02"))
		fmt.Printf("Storage used:  %.1f KB\n", float64(s.StorageBytes)/1024)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "print the dashboard as JSON")
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
}
