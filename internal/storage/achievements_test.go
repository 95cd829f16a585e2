// ABOUTME: Tests for the XP engine and achievement unlocking.
// ABOUTME: Covers level derivation, idempotent checks, and emitted events.
package storage

import (
	"testing"

	"github.com/harperreed/fittracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsDefaultOnFirstRead(t *testing.T) {
	env := setupTestEnv(t)

	s := env.achievements.Stats()
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.XP)
	assert.NotNil(t, s.Badges)
	assert.True(t, env.store.Exists(KeyUserStats))
}

func TestAwardXPIsAdditive(t *testing.T) {
	env := setupTestEnv(t)

	total := 0
	for _, n := range []int{100, 250, 700, 0, 1999, 51} {
		res, ok := env.achievements.AwardXP(n)
		require.True(t, ok)
		total += n
		assert.Equal(t, total, res.NewXP)
		assert.Equal(t, total/1000+1, res.NewLevel)
	}

	s := env.achievements.Stats()
	assert.Equal(t, total, s.XP)
	assert.Equal(t, models.LevelForXP(total), s.Level)
}

func TestAwardXPReportsLevelUp(t *testing.T) {
	env := setupTestEnv(t)

	res, _ := env.achievements.AwardXP(999)
	assert.False(t, res.LeveledUp)

	res, _ = env.achievements.AwardXP(1)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.NewLevel)

	require.Len(t, env.events, 1)
	assert.Equal(t, EventLevelUp, env.events[0].Kind)
	assert.Equal(t, 2, env.events[0].Level)
}

func TestAwardXPIgnoresNegative(t *testing.T) {
	env := setupTestEnv(t)
	env.achievements.AwardXP(500)

	res, ok := env.achievements.AwardXP(-800)
	require.True(t, ok)
	assert.Equal(t, 500, res.NewXP)
	assert.False(t, res.LeveledUp)
}

func TestCheckAchievementsScenario(t *testing.T) {
	env := setupTestEnv(t)
	stats := models.UserStats{TotalWorkouts: 1, XP: 0, CurrentStreak: 7, TotalCaloriesBurned: 0, Level: 1}

	unlocked := env.achievements.CheckAchievements(stats)

	ids := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		ids = append(ids, a.AchievementID)
	}
	assert.ElementsMatch(t, []string{"first_workout", "week_streak"}, ids)
	assert.Equal(t, 350, env.achievements.Stats().XP)

	for _, a := range unlocked {
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.UnlockedAt.IsZero())
	}
}

func TestCheckAchievementsIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	stats := models.UserStats{TotalWorkouts: 1, CurrentStreak: 7, Level: 1}

	env.achievements.CheckAchievements(stats)
	xpAfterFirst := env.achievements.Stats().XP
	countAfterFirst := len(env.achievements.List())

	again := env.achievements.CheckAchievements(stats)

	assert.Empty(t, again)
	assert.Equal(t, xpAfterFirst, env.achievements.Stats().XP)
	assert.Len(t, env.achievements.List(), countAfterFirst)
}

func TestCheckAchievementsEmitsEvents(t *testing.T) {
	env := setupTestEnv(t)

	env.achievements.CheckAchievements(models.UserStats{TotalWorkouts: 1, Level: 1})

	require.Len(t, env.events, 1)
	assert.Equal(t, EventAchievementUnlocked, env.events[0].Kind)
	assert.Equal(t, "First Steps", env.events[0].Title)
	assert.Equal(t, 100, env.events[0].XP)
	assert.True(t, env.achievements.Unlocked("first_workout"))
	assert.False(t, env.achievements.Unlocked("week_streak"))
}

func TestUpdateStatsKeepsLevelDerived(t *testing.T) {
	env := setupTestEnv(t)

	xp := 4200
	workouts := 12
	require.True(t, env.achievements.UpdateStats(models.StatsPatch{XP: &xp, TotalWorkouts: &workouts}))

	s := env.achievements.Stats()
	assert.Equal(t, 5, s.Level)
	assert.Equal(t, 12, s.TotalWorkouts)
}

func TestStatsRepairsStoredLevel(t *testing.T) {
	env := setupTestEnv(t)
	env.store.Set(KeyUserStats, map[string]any{"level": 9, "xp": 1500})

	assert.Equal(t, 2, env.achievements.Stats().Level)
}
