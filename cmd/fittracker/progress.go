// ABOUTME: CLI commands for achievements and challenges.
// ABOUTME: Lists unlocked and locked achievements and per-period challenge progress.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"ach"},
	Short:   "List achievements",
	Long: `List unlocked achievements and what it takes to unlock the rest.

Achievements unlock automatically when you save a workout. Run
'fittracker achievements check' to re-evaluate after importing data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		unlocked := appCtx.Achievements.List()
		if len(unlocked) > 0 {
			fmt.Println("UNLOCKED")
			for _, a := range unlocked {
				fmt.Printf("  %s %s %s %s\n", a.Icon, padRight(a.Title, 20),
					faint.Sprint(a.UnlockedAt.Format("2006-01-02")),
					faint.Sprintf("+%d XP", a.XPReward))
			}
			fmt.Println()
		}

		fmt.Println("LOCKED")
		for _, def := range models.AchievementDefinitions() {
			if appCtx.Achievements.Unlocked(def.ID) {
				continue
			}
			fmt.Printf("  %s %s %s\n", def.Icon, padRight(def.Title, 20), faint.Sprint(def.Description))
		}
		return nil
	},
}

var achievementsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Unlock achievements your stats qualify for",
	RunE: func(cmd *cobra.Command, args []string) error {
		unlocked := appCtx.Achievements.CheckAchievements(appCtx.Achievements.Stats())
		if len(unlocked) == 0 {
			fmt.Println("No new achievements.")
		}
		return nil
	},
}

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "Show challenge progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := appCtx.Clock.Now()
		for _, c := range appCtx.Tracker.Challenges() {
			printChallenge(c, stats.TimeRemaining(c.EndsAt, now))
		}
		return nil
	},
}

func printChallenge(c stats.ChallengeStatus, remaining string) {
	title := c.Title
	if c.Completed {
		title = color.GreenString("✓ %s", c.Title)
	}
	fmt.Printf("%s %s\n", title, faint.Sprintf("(%s, +%d XP)", c.Timeframe, c.XPReward))
	fmt.Printf("  %s %d/%d  %s\n", progressBar(c.Progress, 20), c.Current, c.Target, faint.Sprint(remaining))
}

func init() {
	achievementsCmd.AddCommand(achievementsCheckCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(challengesCmd)
}
