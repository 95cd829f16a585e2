// ABOUTME: Tests for the tracker's workout, meal, challenge, and dashboard flows.
// ABOUTME: Runs against an in-memory app with a fixed clock.
package service_test

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittracker/internal/app"
	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/service"
	"github.com/harperreed/fittracker/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	*app.App
	clock  *clock.Fixed
	events []storage.Event
}

// start is a Friday morning.
func setupTracker(t *testing.T) *harness {
	t.Helper()
	h := &harness{clock: clock.NewFixed(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))}
	h.App = app.NewInMemory(
		app.WithClock(h.clock),
		app.WithLogger(log.New(io.Discard)),
		app.WithNotifier(func(e storage.Event) { h.events = append(h.events, e) }),
	)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func (h *harness) quickWorkout(t *testing.T, seconds int) *service.SaveResult {
	t.Helper()
	_, err := h.Tracker.AddExercise("push-ups", 3, 10, 0, 60)
	require.NoError(t, err)
	res, err := h.Tracker.SaveWorkout(service.SaveOptions{DurationSeconds: seconds})
	require.NoError(t, err)
	return res
}

func TestDraftEditing(t *testing.T) {
	h := setupTracker(t)

	pushups, err := h.Tracker.AddExercise("push-ups", 3, 10, 0, 60)
	require.NoError(t, err)
	_, err = h.Tracker.AddExercise("squats", 4, 12, 20, 90)
	require.NoError(t, err)

	cw := h.Tracker.CurrentWorkout()
	require.Len(t, cw.Exercises, 2)
	assert.True(t, cw.StartTime.Equal(h.clock.Now()))

	reps := 15
	done := true
	updated, err := h.Tracker.UpdateExercise(pushups.ID, service.ExercisePatch{Reps: &reps, Completed: &done})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Reps)
	assert.True(t, updated.Completed)
	assert.Equal(t, 3, updated.Sets)

	require.NoError(t, h.Tracker.RemoveExercise(pushups.ID))
	cw = h.Tracker.CurrentWorkout()
	require.Len(t, cw.Exercises, 1)
	assert.Equal(t, "squats", cw.Exercises[0].ExerciseID)

	assert.ErrorIs(t, h.Tracker.RemoveExercise(pushups.ID), service.ErrEntryNotFound)

	require.NoError(t, h.Tracker.ClearWorkout())
	assert.Empty(t, h.Tracker.CurrentWorkout().Exercises)
}

func TestAddExerciseValidation(t *testing.T) {
	h := setupTracker(t)

	_, err := h.Tracker.AddExercise("flying", 3, 10, 0, 60)
	assert.ErrorIs(t, err, service.ErrUnknownExercise)

	_, err = h.Tracker.AddExercise("plank", 0, 10, 0, 60)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = h.Tracker.AddExercise("plank", 1, 10, -5, 60)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	assert.Empty(t, h.Tracker.CurrentWorkout().Exercises)
}

func TestSaveWorkoutEmptyDraft(t *testing.T) {
	h := setupTracker(t)

	_, err := h.Tracker.SaveWorkout(service.SaveOptions{DurationSeconds: 600})
	assert.ErrorIs(t, err, service.ErrEmptyWorkout)
	assert.Empty(t, h.Workouts.List())
}

func TestSaveWorkoutUpdatesEverything(t *testing.T) {
	h := setupTracker(t)
	_, err := h.Tracker.AddExercise("push-ups", 3, 10, 0, 60)
	require.NoError(t, err)
	_, err = h.Tracker.AddExercise("squats", 3, 12, 0, 60)
	require.NoError(t, err)
	h.Scratch.SetTimerSeconds(600)

	res, err := h.Tracker.SaveWorkout(service.SaveOptions{UseTimer: true, AvgHeartRate: 128})
	require.NoError(t, err)

	assert.Equal(t, 600, res.Workout.Duration)
	assert.Equal(t, 140, res.Workout.CaloriesBurned)
	assert.Equal(t, 128, res.Workout.AvgHeartRate)
	assert.Len(t, res.Workout.Exercises, 2)

	require.Len(t, res.Unlocked, 1)
	assert.Equal(t, "first_workout", res.Unlocked[0].AchievementID)

	assert.Equal(t, 1, res.Stats.TotalWorkouts)
	assert.Equal(t, 140, res.Stats.TotalCaloriesBurned)
	assert.Equal(t, 1, res.Stats.CurrentStreak)
	assert.Equal(t, 1, res.Stats.LongestStreak)
	assert.Equal(t, 100, res.Stats.XP)

	_, hasDraft := h.Workouts.Current()
	assert.False(t, hasDraft)
	assert.Equal(t, 0, h.Scratch.TimerSeconds())
	assert.Len(t, h.Workouts.List(), 1)
}

func TestStreakAcrossDays(t *testing.T) {
	h := setupTracker(t)

	for i := 0; i < 7; i++ {
		h.quickWorkout(t, 60)
		h.clock.Advance(24 * time.Hour)
	}

	s := h.Achievements.Stats()
	assert.Equal(t, 7, s.CurrentStreak)
	assert.Equal(t, 7, s.LongestStreak)
	assert.True(t, h.Achievements.Unlocked("week_streak"))

	// Skip two days, then work out again.
	h.clock.Advance(48 * time.Hour)
	res := h.quickWorkout(t, 60)
	assert.Equal(t, 1, res.Stats.CurrentStreak)
	assert.Equal(t, 7, res.Stats.LongestStreak)
}

func TestChallengesCreditOncePerPeriod(t *testing.T) {
	h := setupTracker(t)

	// Burpees at 12 cal/min for 25 minutes is 300 calories.
	_, err := h.Tracker.AddExercise("burpees", 3, 10, 0, 30)
	require.NoError(t, err)
	res, err := h.Tracker.SaveWorkout(service.SaveOptions{DurationSeconds: 1500})
	require.NoError(t, err)

	require.Len(t, res.CompletedChallenges, 1)
	assert.Equal(t, "daily-calories", res.CompletedChallenges[0].ID)
	assert.Equal(t, 100+100, res.Stats.XP)
	assert.True(t, h.Challenges.IsCompleted("daily-calories_2024-03-15"))

	again := h.quickWorkout(t, 600)
	assert.Empty(t, again.CompletedChallenges)

	h.clock.Advance(24 * time.Hour)
	_, err = h.Tracker.AddExercise("burpees", 3, 10, 0, 30)
	require.NoError(t, err)
	next, err := h.Tracker.SaveWorkout(service.SaveOptions{DurationSeconds: 1500})
	require.NoError(t, err)
	require.Len(t, next.CompletedChallenges, 1)
	assert.Equal(t, "daily-calories", next.CompletedChallenges[0].ID)

	var kinds []storage.EventKind
	for _, e := range h.events {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, storage.EventChallengeCompleted)
	assert.Contains(t, kinds, storage.EventAchievementUnlocked)
}

func TestChallengesListing(t *testing.T) {
	h := setupTracker(t)
	h.quickWorkout(t, 600)

	all := h.Tracker.Challenges()
	require.Len(t, all, len(models.ChallengeDefinitions()))
	for _, c := range all {
		if c.ID == "weekly-workouts" {
			assert.Equal(t, 1, c.Current)
			assert.InDelta(t, 20, c.Progress, 0.001)
			assert.False(t, c.Completed)
		}
	}
}

func TestLogFoodAndSuggestion(t *testing.T) {
	h := setupTracker(t)

	m, err := h.Tracker.LogFood("salmon", models.Dinner, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 312.0, m.Calories)
	assert.Equal(t, models.Dinner, m.MealType)
	assert.NotEmpty(t, m.ID)

	s, err := h.Tracker.LogSuggestion("protein smoothie", "")
	require.NoError(t, err)
	assert.Equal(t, models.Snack, s.MealType)
	assert.Equal(t, 250.0, s.Calories)

	_, err = h.Tracker.LogFood("pizza", models.Lunch, 1)
	assert.ErrorIs(t, err, service.ErrUnknownFood)

	_, err = h.Tracker.LogFood("banana", "brunch", 1)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = h.Tracker.LogSuggestion("Mystery Stew", models.Dinner)
	assert.ErrorIs(t, err, service.ErrUnknownSuggestion)

	assert.Len(t, h.Meals.Today(), 2)
}

func TestLogCustomMeal(t *testing.T) {
	h := setupTracker(t)

	m, err := h.Tracker.LogCustomMeal(models.Meal{Name: "  Leftovers ", MealType: models.Lunch, Calories: 600})
	require.NoError(t, err)
	assert.Equal(t, "Leftovers", m.Name)
	assert.Equal(t, "custom", m.Category)
	assert.Equal(t, 1.0, m.Quantity)

	_, err = h.Tracker.LogCustomMeal(models.Meal{Name: "", MealType: models.Lunch})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = h.Tracker.LogCustomMeal(models.Meal{Name: "Bad", MealType: models.Lunch, Calories: -1})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestDeleteByPrefix(t *testing.T) {
	h := setupTracker(t)
	res := h.quickWorkout(t, 60)
	meal, err := h.Tracker.LogFood("banana", models.Snack, 1)
	require.NoError(t, err)

	deleted, err := h.Tracker.DeleteWorkout(res.Workout.ID[:20])
	require.NoError(t, err)
	assert.Equal(t, res.Workout.ID, deleted.ID)
	assert.Empty(t, h.Workouts.List())
	assert.Equal(t, 1, h.Achievements.Stats().TotalWorkouts)

	_, err = h.Tracker.DeleteMeal(meal.ID)
	require.NoError(t, err)
	_, err = h.Tracker.DeleteMeal(meal.ID)
	assert.Error(t, err)
}

func TestDashboard(t *testing.T) {
	h := setupTracker(t)
	h.quickWorkout(t, 600)
	_, err := h.Tracker.LogFood("oatmeal", models.Breakfast, 1)
	require.NoError(t, err)

	d := h.Tracker.Dashboard()

	assert.Equal(t, 1, d.Workouts.Workouts)
	assert.Equal(t, 80, d.Workouts.CaloriesBurned)
	assert.Equal(t, 142, d.Workouts.AvgHeartRate)
	assert.Equal(t, 154.0, d.Nutrition.Calories)
	assert.InDelta(t, 7.7, d.CalorieGoalPercent, 0.001)
	assert.Equal(t, 22.9, d.BMI)
	assert.Equal(t, "Normal", d.BMICategory)
	assert.Equal(t, 1, d.Level.Level)
	assert.Equal(t, 5, d.Score.Consistency)
	assert.Equal(t, 2, d.Score.Activity)
	assert.Equal(t, 1, d.Score.Nutrition)
	assert.Equal(t, 10, d.Score.Achievements)
	assert.Equal(t, 4, d.Score.Total)
	assert.Len(t, d.RecentAchievements, 1)
	assert.NotEmpty(t, d.Recommendations)
	assert.Len(t, d.Challenges, len(models.ChallengeDefinitions()))
}

func TestAppStatistics(t *testing.T) {
	h := setupTracker(t)
	h.quickWorkout(t, 60)
	_, err := h.Tracker.LogFood("almonds", models.Snack, 1)
	require.NoError(t, err)

	st := h.Tracker.AppStatistics()
	assert.Equal(t, 1, st.TotalWorkouts)
	assert.Equal(t, 1, st.TotalMeals)
	assert.Equal(t, 1, st.TotalAchievements)
	assert.Equal(t, 100, st.XP)
	assert.Positive(t, st.StorageBytes)
}
