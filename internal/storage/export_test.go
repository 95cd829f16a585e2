// ABOUTME: Tests for complete backup export and import.
// ABOUTME: Verifies JSON, YAML, and Markdown export plus import validation and merging.
package storage

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fittracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedEnv(t *testing.T, env *testEnv) {
	t.Helper()

	pushups, _ := models.ExerciseByID("push-ups")
	env.workouts.Add(models.Workout{
		Exercises:      []models.WorkoutExercise{models.NewWorkoutExercise(pushups, 3, 10, 0, 60)},
		Duration:       600,
		CaloriesBurned: 80,
		CompletedAt:    env.clock.Now(),
	})
	env.clock.Advance(time.Hour)
	banana, _ := models.FoodByID("banana")
	env.meals.Add(models.MealFromFood(banana, models.Snack, 1))
	env.clock.Advance(time.Hour)
	env.workouts.Add(models.Workout{Duration: 300, CaloriesBurned: 40, CompletedAt: env.clock.Now()})

	name := "Sam"
	env.user.UpdateProfile(models.ProfilePatch{Name: &name})
	env.achievements.CheckAchievements(models.UserStats{TotalWorkouts: 2, Level: 1})
}

func TestExportJSON(t *testing.T) {
	env := setupTestEnv(t)
	seedEnv(t, env)

	data, err := env.backup.ExportJSON()
	require.NoError(t, err)

	var export map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &export))
	for _, field := range []string{"version", "exportDate", "userProfile", "userGoals", "workouts", "meals", "achievements", "userStats"} {
		assert.Contains(t, export, field)
	}

	var parsed CompleteBackup
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, BackupVersion, parsed.Version)
	assert.Len(t, parsed.Workouts, 2)
	assert.Len(t, parsed.Meals, 1)
	assert.Equal(t, "Sam", parsed.UserProfile.Name)
	assert.Equal(t, 100, parsed.UserStats.XP)
}

func TestExportYAML(t *testing.T) {
	env := setupTestEnv(t)
	seedEnv(t, env)

	data, err := env.backup.ExportYAML()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, BackupVersion, parsed["version"])
	workouts, ok := parsed["workouts"].([]any)
	require.True(t, ok)
	assert.Len(t, workouts, 2)
}

func TestExportMarkdown(t *testing.T) {
	env := setupTestEnv(t)
	seedEnv(t, env)

	md := env.backup.ExportMarkdown(nil)
	assert.True(t, strings.HasPrefix(md, "# Fitness Export - 2024-03-15"))
	assert.Contains(t, md, "## Workouts")
	assert.Contains(t, md, "Push-ups")
	assert.Contains(t, md, "Banana (medium)")
	assert.Contains(t, md, "First Steps")

	future := env.clock.Now().Add(time.Hour)
	filtered := env.backup.ExportMarkdown(&future)
	assert.NotContains(t, filtered, "## Workouts")
	assert.NotContains(t, filtered, "## Meals")
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	env := setupTestEnv(t)

	for name, payload := range map[string]string{
		"not json":      `{oops`,
		"array":         `[1,2,3]`,
		"null":          `null`,
		"no version":    `{"workouts": []}`,
		"empty version": `{"version": ""}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.backup.ImportJSON([]byte(payload))
			assert.True(t, errors.Is(err, ErrInvalidBackup), "err = %v", err)
		})
	}
	assert.Empty(t, env.store.Keys(), "rejected imports must not write anything")
}

func TestImportOnlyWorkouts(t *testing.T) {
	env := setupTestEnv(t)
	existing, _ := env.workouts.Add(models.Workout{Duration: 60})
	profileBefore := env.user.Profile()

	payload := `{"version":"1.0.0","workouts":[
		{"id":"w1","createdAt":"2024-03-01T10:00:00Z","duration":600,"caloriesBurned":80,"exercises":[]},
		{"id":"w2","createdAt":"2024-03-02T10:00:00Z","duration":300,"caloriesBurned":40,"exercises":[]}
	]}`

	summary, err := env.backup.ImportJSON([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Workouts)
	assert.False(t, summary.Profile)
	assert.False(t, summary.Stats)

	list := env.workouts.List()
	require.Len(t, list, 3)
	assert.Equal(t, existing.ID, list[0].ID)
	assert.Equal(t, "w1", list[1].ID)
	assert.Equal(t, "w2", list[2].ID)

	assert.Equal(t, profileBefore, env.user.Profile())
	assert.Empty(t, env.meals.List())
	assert.Empty(t, env.achievements.List())
	assert.False(t, env.store.Exists(KeyUserStats))
}

func TestImportSkipsExistingIDs(t *testing.T) {
	env := setupTestEnv(t)
	payload := []byte(`{"version":"1.0.0","meals":[{"id":"m1","name":"Banana","mealType":"snack","calories":105}]}`)

	_, err := env.backup.ImportJSON(payload)
	require.NoError(t, err)
	summary, err := env.backup.ImportJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Meals)
	assert.Equal(t, 1, summary.MealsSkipped)
	assert.Len(t, env.meals.List(), 1)
}

func TestImportAssignsMissingIdentity(t *testing.T) {
	env := setupTestEnv(t)
	payload := []byte(`{"version":"1.0.0","meals":[{"name":"Mystery","mealType":"lunch","calories":300}]}`)

	_, err := env.backup.ImportJSON(payload)
	require.NoError(t, err)

	meals := env.meals.List()
	require.Len(t, meals, 1)
	assert.NotEmpty(t, meals[0].ID)
	assert.True(t, meals[0].CreatedAt.Equal(env.clock.Now()))
}

func TestImportAchievementsWithoutXP(t *testing.T) {
	env := setupTestEnv(t)
	env.achievements.CheckAchievements(models.UserStats{TotalWorkouts: 1, Level: 1})
	xpBefore := env.achievements.Stats().XP

	payload := []byte(`{"version":"1.0.0","achievements":[
		{"id":"a1","achievementId":"first_workout","title":"First Steps","xpReward":100},
		{"id":"a2","achievementId":"week_streak","title":"Consistency","xpReward":250},
		{"id":"a3","achievementId":"week_streak","title":"Consistency","xpReward":250}
	]}`)
	summary, err := env.backup.ImportJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Achievements)
	assert.Equal(t, 2, summary.AchievementsSkipped)
	assert.Equal(t, xpBefore, env.achievements.Stats().XP)
	assert.True(t, env.achievements.Unlocked("week_streak"))
}

func TestImportMergesSingletons(t *testing.T) {
	env := setupTestEnv(t)

	payload := []byte(`{"version":"1.0.0",
		"userProfile":{"name":"Alex","weight":80},
		"userGoals":{"dailySteps":12000},
		"userStats":{"xp":2500,"level":1,"totalWorkouts":9}
	}`)
	summary, err := env.backup.ImportJSON(payload)
	require.NoError(t, err)
	assert.True(t, summary.Profile)
	assert.True(t, summary.Goals)
	assert.True(t, summary.Stats)
	assert.Empty(t, summary.Failed)

	p := env.user.Profile()
	assert.Equal(t, "Alex", p.Name)
	assert.Equal(t, 80.0, p.Weight)
	assert.Equal(t, 30, p.Age)

	g := env.user.Goals()
	assert.Equal(t, 12000, g.DailySteps)
	assert.Equal(t, 2000, g.DailyCalories)

	s := env.achievements.Stats()
	assert.Equal(t, 2500, s.XP)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 9, s.TotalWorkouts)
}

func TestImportBadFieldIsBestEffort(t *testing.T) {
	env := setupTestEnv(t)

	payload := []byte(`{"version":"1.0.0","workouts":"nope","meals":[{"id":"m1","name":"Banana"}]}`)
	summary, err := env.backup.ImportJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, []string{"workouts"}, summary.Failed)
	assert.Equal(t, 1, summary.Meals)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestEnv(t)
	seedEnv(t, src)
	data, err := src.backup.ExportJSON()
	require.NoError(t, err)

	dst := setupTestEnv(t)
	_, err = dst.backup.ImportJSON(data)
	require.NoError(t, err)

	assert.Equal(t, src.workouts.List(), dst.workouts.List())
	assert.Equal(t, src.meals.List(), dst.meals.List())
	assert.Equal(t, src.achievements.List(), dst.achievements.List())
	assert.Equal(t, src.user.Profile(), dst.user.Profile())
	assert.Equal(t, src.user.Goals(), dst.user.Goals())
	assert.Equal(t, src.achievements.Stats(), dst.achievements.Stats())
}

func TestYAMLImportRoundTrip(t *testing.T) {
	src := setupTestEnv(t)
	seedEnv(t, src)
	data, err := src.backup.ExportYAML()
	require.NoError(t, err)

	dst := setupTestEnv(t)
	summary, err := dst.backup.ImportYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Workouts)
	assert.Equal(t, 1, summary.Meals)
	assert.Len(t, dst.workouts.List(), 2)

	_, err = dst.backup.ImportYAML([]byte("- just\n- a list\n"))
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestStoreLevelRoundTrip(t *testing.T) {
	src := setupTestEnv(t)
	seedEnv(t, src)
	src.workouts.SetCurrent(models.CurrentWorkout{})
	src.scratch.SetTimerSeconds(12)

	dst := setupTestEnv(t)
	require.True(t, dst.store.ImportAll(src.store.ExportAll()))

	assert.Equal(t, src.workouts.List(), dst.workouts.List())
	assert.Equal(t, src.meals.List(), dst.meals.List())
	assert.Equal(t, src.achievements.List(), dst.achievements.List())
	assert.Equal(t, 12, dst.scratch.TimerSeconds())
	_, ok := dst.workouts.Current()
	assert.True(t, ok)
}
