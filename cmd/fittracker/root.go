// ABOUTME: Root Cobra command for the fittracker CLI.
// ABOUTME: Opens the configured backend and builds the app context via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/app"
	"github.com/harperreed/fittracker/internal/config"
	"github.com/harperreed/fittracker/internal/storage"
	"github.com/spf13/cobra"
)

const (
	// skipAppAnnotation marks commands that must not open the store.
	skipAppAnnotation = "fittracker/skip-app"
	// quietAnnotation marks commands that must not print event notifications.
	quietAnnotation = "fittracker/quiet"
)

var (
	cfg         *config.Config
	appCtx      *app.App
	backendFlag string
)

// openApp builds the app context from configuration. Tests replace it.
var openApp = func(c *config.Config) (*app.App, error) {
	backend, err := c.OpenBackend()
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", c.GetBackend(), err)
	}
	logger, err := c.Logger(os.Stderr)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return app.New(backend, app.WithLogger(logger), app.WithNotifier(printEvent)), nil
}

var rootCmd = &cobra.Command{
	Use:   "fittracker",
	Short: "Personal workout, nutrition, and progress tracker",
	Long: `Fittracker is a CLI tool for logging workouts and meals and tracking progress.

WHAT IT TRACKS:

  Workouts      exercises with sets, reps, weight, rest, and a workout timer
  Nutrition     meals from a food database, suggestions, or custom entries
  Progress      XP, levels, streaks, achievements, and weekly/monthly challenges

QUICK START:

  $ fittracker profile set --name Sam --weight 72 --height 178
  $ fittracker workout add push-ups --sets 3 --reps 12
  $ fittracker workout add squats --sets 4 --reps 10 --weight 40
  $ fittracker workout save --duration 30
  $ fittracker meal log banana --type breakfast
  $ fittracker dashboard

STORAGE:

  Data lives in a key-value store selected in ~/.config/fittracker/config.json:

    {"backend": "sqlite"}    SQLite file (default) at ~/.local/share/fittracker/fittracker.db
    {"backend": "badger"}    Badger directory at ~/.local/share/fittracker/badger
    {"backend": "charm"}     Charm KV, synced across devices (see 'fittracker sync')
    {"backend": "memory"}    Nothing persisted

  Use --backend to override the config for one command.

MCP INTEGRATION:

  Run 'fittracker mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "fittracker": { "command": "fittracker", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Annotations[skipAppAnnotation] != "" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}

		appCtx, err = openApp(cfg)
		if err != nil {
			return err
		}
		if cmd.Annotations[quietAnnotation] != "" {
			appCtx.Achievements.SetNotifier(nil)
		}

		if appCtx.Scratch.DueForUpdateCheck(appCtx.Clock.Now()) {
			dailyRefresh()
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appCtx == nil {
			return nil
		}
		err := appCtx.Close()
		appCtx = nil
		return err
	},
}

// dailyRefresh credits progress that only changes with the calendar, such as
// a challenge period rolling over, once per day.
func dailyRefresh() {
	appCtx.Achievements.CheckAchievements(appCtx.Achievements.Stats())
	appCtx.Tracker.CheckChallenges()
}

// printEvent shows achievement, level, and challenge notifications.
func printEvent(e storage.Event) {
	switch e.Kind {
	case storage.EventAchievementUnlocked:
		color.Magenta("🏆 Achievement unlocked: %s (+%d XP)", e.Title, e.XP)
	case storage.EventLevelUp:
		color.Magenta("⬆ Level up! You are now level %d", e.Level)
	case storage.EventChallengeCompleted:
		color.Magenta("🎯 Challenge complete: %s (+%d XP)", e.Title, e.XP)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend (sqlite, badger, charm, memory)")
}
