// ABOUTME: Read-only snapshots for the dashboard and app statistics views.
// ABOUTME: Combines workout, nutrition, score, and challenge aggregates for one moment.
package service

import (
	"time"

	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
)

// Dashboard aggregates today's activity with long-running progress.
type Dashboard struct {
	Date               time.Time               `json:"date"`
	Profile            models.UserProfile      `json:"profile"`
	BMI                float64                 `json:"bmi"`
	BMICategory        string                  `json:"bmiCategory"`
	Goals              models.UserGoals        `json:"goals"`
	Workouts           stats.WorkoutSummary    `json:"workouts"`
	Nutrition          stats.NutritionSummary  `json:"nutrition"`
	Macros             stats.Macros            `json:"macros"`
	CalorieGoalPercent float64                 `json:"calorieGoalPercent"`
	Stats              models.UserStats        `json:"stats"`
	Level              stats.LevelProgress     `json:"level"`
	Score              stats.Score             `json:"score"`
	Recommendations    []stats.Recommendation  `json:"recommendations"`
	Challenges         []stats.ChallengeStatus `json:"challenges"`
	RecentAchievements []models.Achievement    `json:"recentAchievements"`
}

// Dashboard builds the current snapshot.
func (t *Tracker) Dashboard() Dashboard {
	now := t.clock.Now()
	profile := t.user.Profile()
	goals := t.user.Goals()
	s := t.achievements.Stats()
	achievements := t.achievements.List()
	nutrition := stats.SummarizeNutrition(t.meals.Today())
	bmi := stats.BMI(profile.Weight, profile.Height)
	score := stats.FitnessScore(s, len(t.meals.List()), len(achievements))

	d := Dashboard{
		Date:               now,
		Profile:            profile,
		BMI:                bmi,
		BMICategory:        stats.BMICategory(bmi),
		Goals:              goals,
		Workouts:           stats.SummarizeWorkouts(t.workouts.Today()),
		Nutrition:          nutrition,
		Macros:             stats.MacroPercentages(nutrition),
		Stats:              s,
		Level:              stats.ProgressForXP(s.XP),
		Score:              score,
		Recommendations:    stats.Recommendations(score),
		Challenges:         t.Challenges(),
		RecentAchievements: achievements[:min(5, len(achievements))],
	}
	if goals.DailyCalories > 0 {
		d.CalorieGoalPercent = nutrition.Calories / float64(goals.DailyCalories) * 100
	}
	return d
}

// AppStatistics summarizes everything stored.
type AppStatistics struct {
	TotalWorkouts     int       `json:"totalWorkouts"`
	TotalMeals        int       `json:"totalMeals"`
	TotalAchievements int       `json:"totalAchievements"`
	Level             int       `json:"level"`
	XP                int       `json:"xp"`
	CurrentStreak     int       `json:"currentStreak"`
	LongestStreak     int       `json:"longestStreak"`
	StorageBytes      int       `json:"storageBytes"`
	JoinDate          time.Time `json:"joinDate"`
}

// AppStatistics counts stored records and reports storage use.
func (t *Tracker) AppStatistics() AppStatistics {
	s := t.achievements.Stats()
	return AppStatistics{
		TotalWorkouts:     len(t.workouts.List()),
		TotalMeals:        len(t.meals.List()),
		TotalAchievements: len(t.achievements.List()),
		Level:             s.Level,
		XP:                s.XP,
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		StorageBytes:      t.store.SizeInBytes(),
		JoinDate:          s.JoinDate,
	}
}
