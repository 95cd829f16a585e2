// ABOUTME: Fitness score, recommendations, and level progress.
// ABOUTME: The score weights consistency, activity, nutrition, and achievements.
package stats

import (
	"math"

	"github.com/harperreed/fittracker/internal/models"
)

// Score is the weighted fitness score and its parts, each 0..100.
type Score struct {
	Total        int `json:"total"`
	Consistency  int `json:"consistency"`
	Activity     int `json:"activity"`
	Nutrition    int `json:"nutrition"`
	Achievements int `json:"achievements"`
}

// Sub-score weights. They sum to 1.
const (
	WeightConsistency  = 0.3
	WeightActivity     = 0.3
	WeightNutrition    = 0.2
	WeightAchievements = 0.2
)

func capAt100(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

// FitnessScore combines the current streak, total workouts, meals logged,
// and achievements unlocked.
func FitnessScore(s models.UserStats, mealCount, achievementCount int) Score {
	sc := Score{
		Consistency:  capAt100(s.CurrentStreak * 5),
		Activity:     capAt100(s.TotalWorkouts * 2),
		Nutrition:    capAt100(mealCount),
		Achievements: capAt100(achievementCount * 10),
	}
	sc.Total = int(math.Round(
		float64(sc.Consistency)*WeightConsistency +
			float64(sc.Activity)*WeightActivity +
			float64(sc.Nutrition)*WeightNutrition +
			float64(sc.Achievements)*WeightAchievements))
	return sc
}

// Recommendation is a nudge toward a weak sub-score.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Recommendations suggests what to work on for the weakest parts of sc.
func Recommendations(sc Score) []Recommendation {
	recs := []Recommendation{}
	if sc.Consistency < 50 {
		recs = append(recs, Recommendation{
			Type:        "consistency",
			Title:       "Build Consistency",
			Description: "Try to work out at the same time each day to build a habit",
			Priority:    "high",
		})
	}
	if sc.Activity < 30 {
		recs = append(recs, Recommendation{
			Type:        "activity",
			Title:       "Increase Activity",
			Description: "Aim for at least 3 workouts per week to see progress",
			Priority:    "high",
		})
	}
	if sc.Nutrition < 40 {
		recs = append(recs, Recommendation{
			Type:        "nutrition",
			Title:       "Track Nutrition",
			Description: "Log your meals to better understand your eating patterns",
			Priority:    "medium",
		})
	}
	return recs
}

// LevelProgress describes how far the user is through their current level.
type LevelProgress struct {
	Level       int     `json:"level"`
	XP          int     `json:"xp"`
	LevelStart  int     `json:"levelStart"`
	NextLevelXP int     `json:"nextLevelXP"`
	Percent     float64 `json:"percent"`
}

// ProgressForXP derives level progress from total XP.
func ProgressForXP(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	level := models.LevelForXP(xp)
	start := (level - 1) * models.XPPerLevel
	next := level * models.XPPerLevel
	return LevelProgress{
		Level:       level,
		XP:          xp,
		LevelStart:  start,
		NextLevelXP: next,
		Percent:     float64(xp-start) / float64(next-start) * 100,
	}
}
