// ABOUTME: CLI commands for building, timing, and saving workouts.
// ABOUTME: The draft lives in the store until 'workout save' moves it into history.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/service"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/harperreed/fittracker/internal/timer"
	"github.com/spf13/cobra"
)

var (
	exerciseCategory string

	entrySets   int
	entryReps   int
	entryWeight float64
	entryRest   int

	editSets   int
	editReps   int
	editWeight float64
	editRest   int
	editDone   bool

	saveDuration int
	saveTimer    bool
	saveHR       int

	workoutDays  int
	workoutLimit int

	timerReset bool

	estimateMinutes float64
	estimateWeight  float64
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Build and log workouts",
	Long: `Build a workout from the exercise database, then save it to your history.

WORKFLOW:

  1. See what's available:   fittracker workout exercises
  2. Add to the draft:       fittracker workout add push-ups --sets 3 --reps 12
  3. Time it (optional):     fittracker workout timer
  4. Save it:                fittracker workout save --timer

Saving updates your totals and streak, unlocks achievements, and credits
challenges. The draft survives between runs until you save or clear it.`,
}

var workoutExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise database",
	RunE: func(cmd *cobra.Command, args []string) error {
		exs := models.Exercises(exerciseCategory)
		if len(exs) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}
		for _, ex := range exs {
			fmt.Printf("%s %s %s %s\n",
				padRight(ex.ID, 14),
				padRight(ex.Name, 16),
				faint.Sprint(padRight(ex.Category+"/"+ex.Difficulty, 24)),
				faint.Sprintf("%.0f kcal/min", ex.CaloriesPerMinute))
		}
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add an exercise to the current workout",
	Long: `Add an exercise to the current workout draft.

Examples:
  fittracker workout add push-ups
  fittracker workout add squats --sets 4 --reps 10 --weight 40 --rest 90`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := appCtx.Tracker.AddExercise(args[0], entrySets, entryReps, entryWeight, entryRest)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", entry.Name)
		fmt.Printf("  %s %s\n", faint.Sprint(shortID(entry.ID)), describeEntry(entry))
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <n|entry-id>",
	Short: "Change an exercise in the current workout",
	Long: `Change an exercise in the current workout. Refer to it by its position in
'fittracker workout show' or by its entry ID prefix.

Examples:
  fittracker workout edit 2 --reps 15
  fittracker workout edit 1 --done`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		var patch service.ExercisePatch
		if flags.Changed("sets") {
			patch.Sets = &editSets
		}
		if flags.Changed("reps") {
			patch.Reps = &editReps
		}
		if flags.Changed("weight") {
			patch.Weight = &editWeight
		}
		if flags.Changed("rest") {
			patch.RestTime = &editRest
		}
		if flags.Changed("done") {
			patch.Completed = &editDone
		}

		entry, err := appCtx.Tracker.UpdateExercise(id, patch)
		if err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}
		color.Green("✓ Updated %s", entry.Name)
		fmt.Printf("  %s %s\n", faint.Sprint(shortID(entry.ID)), describeEntry(entry))
		return nil
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:     "remove <n|entry-id>",
	Aliases: []string{"rm"},
	Short:   "Remove an exercise from the current workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}
		if err := appCtx.Tracker.RemoveExercise(id); err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}
		color.Yellow("✗ Removed %s", shortID(id))
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cw := appCtx.Tracker.CurrentWorkout()
		if len(cw.Exercises) == 0 {
			fmt.Println("No workout in progress. Add one with 'fittracker workout add <exercise-id>'.")
			return nil
		}

		fmt.Printf("Started: %s\n", cw.StartTime.Format("2006-01-02 15:04"))
		if secs := appCtx.Scratch.TimerSeconds(); secs > 0 {
			fmt.Printf("Timer:   %s\n", timer.Format(secs))
		}
		fmt.Println()
		for i, ex := range cw.Exercises {
			mark := " "
			if ex.Completed {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%2d. %s %s %s %s\n", i+1, mark,
				faint.Sprint(shortID(ex.ID)),
				padRight(ex.Name, 16),
				describeEntry(ex))
		}
		return nil
	},
}

var workoutSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current workout to history",
	Long: `Save the current workout to history.

The duration comes from --duration (minutes) or, with --timer, from the
workout timer. Calories are estimated from each exercise's burn rate.

Examples:
  fittracker workout save --duration 45
  fittracker workout save --timer --hr 138`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := appCtx.Tracker.SaveWorkout(service.SaveOptions{
			DurationSeconds: saveDuration * 60,
			UseTimer:        saveTimer,
			AvgHeartRate:    saveHR,
		})
		if err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		w := res.Workout
		color.Green("✓ Saved workout")
		fmt.Printf("  %s %d exercises, %s, %d kcal\n",
			faint.Sprint(shortID(w.ID)), len(w.Exercises), timer.Format(w.Duration), w.CaloriesBurned)
		fmt.Printf("  Level %d  %d XP  streak %d days\n", res.Stats.Level, res.Stats.XP, res.Stats.CurrentStreak)
		return nil
	},
}

var workoutClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the current workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appCtx.Tracker.ClearWorkout(); err != nil {
			return fmt.Errorf("failed to clear workout: %w", err)
		}
		color.Yellow("✗ Cleared current workout")
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts := appCtx.Workouts.List()
		if workoutDays > 0 {
			now := appCtx.Clock.Now()
			workouts = appCtx.Workouts.ByDateRange(now.AddDate(0, 0, -workoutDays), now)
		}
		if workoutLimit > 0 && len(workouts) > workoutLimit {
			workouts = workouts[:workoutLimit]
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		for _, w := range workouts {
			names := make([]string, 0, len(w.Exercises))
			for _, ex := range w.Exercises {
				names = append(names, ex.Name)
			}
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.CompletedAt.Format("2006-01-02 15:04")),
				padRight(timer.Format(w.Duration), 8),
				padRight(fmt.Sprintf("%d kcal", w.CaloriesBurned), 10),
				truncate(strings.Join(names, ", "), 40))
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del"},
	Short:   "Delete a saved workout",
	Long: `Delete a saved workout by its ID or ID prefix.

Your totals, XP, and achievements are not reduced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := appCtx.Tracker.DeleteWorkout(args[0])
		if err != nil {
			return err
		}
		color.Yellow("✗ Deleted workout")
		fmt.Printf("  %s %s %d kcal\n",
			faint.Sprint(shortID(w.ID)),
			w.CompletedAt.Format("2006-01-02 15:04"),
			w.CaloriesBurned)
		return nil
	},
}

var workoutTimerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the workout timer",
	Long: `Run the workout timer in the foreground. Press Ctrl-C to pause.

The elapsed time is saved every second, so the next run picks up where
this one stopped. Use 'fittracker workout save --timer' to save the
workout with the timed duration, or --reset to start over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := timer.New(appCtx.Scratch, timer.WithOnTick(func(s int) {
			fmt.Printf("\r⏱  %s ", timer.Format(s))
		}))
		if timerReset {
			t.Reset()
			color.Yellow("✗ Timer reset")
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runTimer(ctx, t)
	},
}

// runTimer counts until ctx is done and then pauses.
func runTimer(ctx context.Context, t *timer.Timer) error {
	fmt.Printf("⏱  %s ", timer.Format(t.Seconds()))
	t.Start()
	<-ctx.Done()
	t.Pause()
	fmt.Println()
	color.Green("✓ Timer paused at %s", timer.Format(t.Seconds()))
	return nil
}

func describeEntry(ex models.WorkoutExercise) string {
	s := fmt.Sprintf("%d×%d", ex.Sets, ex.Reps)
	if ex.Weight > 0 {
		s += fmt.Sprintf(" @ %.1f kg", ex.Weight)
	}
	return s + faint.Sprintf(" rest %ds", ex.RestTime)
}

// resolveEntry maps a 1-based position or an entry ID prefix to an entry ID.
func resolveEntry(arg string) (string, error) {
	cw := appCtx.Tracker.CurrentWorkout()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(cw.Exercises) {
			return "", fmt.Errorf("no exercise at position %d", n)
		}
		return cw.Exercises[n-1].ID, nil
	}

	match := ""
	for _, ex := range cw.Exercises {
		if strings.HasPrefix(ex.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous entry id: %s", arg)
			}
			match = ex.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", service.ErrEntryNotFound, arg)
	}
	return match, nil
}

var workoutEstimateCmd = &cobra.Command{
	Use:   "estimate <activity>",
	Short: "Estimate calories burned by an activity",
	Long: `Estimate calories burned from the activity's MET value and your weight.

Known activities: running, cycling, swimming, walking, yoga, strength-training,
hiit, pilates, dancing, hiking. Anything else uses a moderate default.

Examples:
  fittracker workout estimate running --minutes 30
  fittracker workout estimate yoga -m 45 --weight 62`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if estimateMinutes <= 0 {
			return fmt.Errorf("--minutes must be positive")
		}
		weight := estimateWeight
		if weight <= 0 {
			weight = appCtx.User.Profile().Weight
		}
		kcal := stats.EstimateCalories(args[0], estimateMinutes, weight)
		fmt.Printf("%s for %.0f min at %.1f kg: ~%d kcal\n", args[0], estimateMinutes, weight, kcal)
		return nil
	},
}

func init() {
	workoutExercisesCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "filter by category (strength, cardio, flexibility)")

	workoutAddCmd.Flags().IntVar(&entrySets, "sets", 3, "number of sets")
	workoutAddCmd.Flags().IntVar(&entryReps, "reps", 10, "reps per set")
	workoutAddCmd.Flags().Float64Var(&entryWeight, "weight", 0, "weight in kg")
	workoutAddCmd.Flags().IntVar(&entryRest, "rest", 60, "rest between sets in seconds")

	workoutEditCmd.Flags().IntVar(&editSets, "sets", 0, "number of sets")
	workoutEditCmd.Flags().IntVar(&editReps, "reps", 0, "reps per set")
	workoutEditCmd.Flags().Float64Var(&editWeight, "weight", 0, "weight in kg")
	workoutEditCmd.Flags().IntVar(&editRest, "rest", 0, "rest between sets in seconds")
	workoutEditCmd.Flags().BoolVar(&editDone, "done", false, "mark the exercise completed (--done=false to undo)")

	workoutSaveCmd.Flags().IntVarP(&saveDuration, "duration", "d", 0, "duration in minutes")
	workoutSaveCmd.Flags().BoolVar(&saveTimer, "timer", false, "use the workout timer for the duration")
	workoutSaveCmd.Flags().IntVar(&saveHR, "hr", 0, "average heart rate in bpm")

	workoutListCmd.Flags().IntVar(&workoutDays, "days", 0, "only workouts from the last N days")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutTimerCmd.Flags().BoolVar(&timerReset, "reset", false, "clear the timer instead of running it")

	workoutEstimateCmd.Flags().Float64VarP(&estimateMinutes, "minutes", "m", 30, "duration in minutes")
	workoutEstimateCmd.Flags().Float64Var(&estimateWeight, "weight", 0, "body weight in kg (default: profile weight)")

	workoutCmd.AddCommand(workoutExercisesCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutRemoveCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutSaveCmd)
	workoutCmd.AddCommand(workoutClearCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutTimerCmd)
	workoutCmd.AddCommand(workoutEstimateCmd)
	rootCmd.AddCommand(workoutCmd)
}
