// ABOUTME: Tests for nutrition, workout, score, and body aggregates.
// ABOUTME: All inputs are built in memory with fixed timestamps.
package stats

import (
	"testing"
	"time"

	"github.com/harperreed/fittracker/internal/models"
)

var now = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC) // a Friday

func at(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func workoutOn(t time.Time, calories, duration, hr int) models.Workout {
	return models.Workout{ID: models.NewID(t), CreatedAt: t, CaloriesBurned: calories, Duration: duration, AvgHeartRate: hr}
}

func TestSummarizeNutrition(t *testing.T) {
	meals := []models.Meal{
		{Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, MealType: models.Snack, CreatedAt: at(15, 8)},
		{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, MealType: models.Lunch, CreatedAt: at(15, 12)},
		{Calories: 500, Protein: 20, Carbs: 60, Fat: 10, MealType: models.Dinner, CreatedAt: at(14, 19)},
	}

	all := SummarizeNutrition(meals)
	if all.Meals != 3 || all.Calories != 770 {
		t.Errorf("SummarizeNutrition = %+v", all)
	}

	today := DailyNutrition(meals, now)
	if today.Meals != 2 || today.Calories != 270 || today.Protein != 32.3 {
		t.Errorf("DailyNutrition = %+v", today)
	}

	byType := ByMealType(meals)
	if byType[models.Breakfast].Meals != 0 || byType[models.Dinner].Calories != 500 {
		t.Errorf("ByMealType = %+v", byType)
	}
}

func TestWeeklyNutrition(t *testing.T) {
	meals := []models.Meal{
		{Calories: 100, CreatedAt: at(9, 8)},
		{Calories: 200, CreatedAt: at(10, 8)},
		{Calories: 300, CreatedAt: at(15, 8)},
	}

	week := WeeklyNutrition(meals, now)
	if len(week) != 7 {
		t.Fatalf("len = %d, want 7", len(week))
	}
	if !week[0].Date.Equal(at(9, 0)) || !week[6].Date.Equal(at(15, 0)) {
		t.Errorf("range = %v .. %v", week[0].Date, week[6].Date)
	}
	if week[0].Calories != 100 || week[1].Calories != 200 || week[6].Calories != 300 || week[3].Calories != 0 {
		t.Errorf("unexpected breakdown: %+v", week)
	}
}

func TestMacroPercentages(t *testing.T) {
	got := MacroPercentages(NutritionSummary{Protein: 25, Carbs: 50, Fat: 11.111})
	if got.Protein != 25 || got.Carbs != 50 || got.Fat != 25 {
		t.Errorf("MacroPercentages = %+v", got)
	}
	if zero := MacroPercentages(NutritionSummary{}); zero != (Macros{}) {
		t.Errorf("empty summary = %+v", zero)
	}
}

func TestAverageHeartRate(t *testing.T) {
	tests := []struct {
		name     string
		workouts []models.Workout
		want     int
	}{
		{"no workouts", nil, 0},
		{"none reported", []models.Workout{workoutOn(now, 0, 0, 0)}, DefaultHeartRate},
		{"some reported", []models.Workout{workoutOn(now, 0, 0, 120), workoutOn(now, 0, 0, 0), workoutOn(now, 0, 0, 135)}, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageHeartRate(tt.workouts); got != tt.want {
				t.Errorf("AverageHeartRate = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyWorkoutStats(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(at(15, 7), 80, 600, 0),
		workoutOn(at(15, 17), 120, 900, 140),
		workoutOn(at(14, 7), 500, 3600, 150),
	}

	got := DailyWorkoutStats(workouts, now)
	if got.Workouts != 2 || got.CaloriesBurned != 200 || got.Duration != 1500 || got.AvgHeartRate != 140 {
		t.Errorf("DailyWorkoutStats = %+v", got)
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name        string
		days        []int
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 0, 0},
		{"today only", []int{15}, 1, 1},
		{"ends yesterday", []int{12, 13, 14}, 3, 3},
		{"broken", []int{10, 11, 12, 14, 15}, 2, 3},
		{"stale", []int{1, 2, 3, 4}, 0, 4},
		{"duplicates", []int{14, 14, 15, 15}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var workouts []models.Workout
			for _, d := range tt.days {
				workouts = append(workouts, workoutOn(at(d, 9), 10, 60, 0))
			}
			current, longest := Streak(workouts, now)
			if current != tt.wantCurrent || longest != tt.wantLongest {
				t.Errorf("Streak = (%d, %d), want (%d, %d)", current, longest, tt.wantCurrent, tt.wantLongest)
			}
		})
	}
}

func TestFitnessScore(t *testing.T) {
	s := models.UserStats{CurrentStreak: 4, TotalWorkouts: 10}
	got := FitnessScore(s, 30, 2)

	want := Score{Consistency: 20, Activity: 20, Nutrition: 30, Achievements: 20, Total: 22}
	if got != want {
		t.Errorf("FitnessScore = %+v, want %+v", got, want)
	}

	capped := FitnessScore(models.UserStats{CurrentStreak: 50, TotalWorkouts: 500}, 1000, 50)
	if capped.Total != 100 {
		t.Errorf("capped total = %d, want 100", capped.Total)
	}
	if WeightConsistency+WeightActivity+WeightNutrition+WeightAchievements != 1.0 {
		t.Error("weights must sum to 1")
	}
}

func TestRecommendations(t *testing.T) {
	recs := Recommendations(Score{Consistency: 10, Activity: 10, Nutrition: 10})
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[2].Priority != "medium" {
		t.Errorf("nutrition priority = %s", recs[2].Priority)
	}
	if got := Recommendations(Score{Consistency: 50, Activity: 30, Nutrition: 40}); len(got) != 0 {
		t.Errorf("expected no recommendations at thresholds, got %v", got)
	}
}

func TestProgressForXP(t *testing.T) {
	p := ProgressForXP(2250)
	if p.Level != 3 || p.LevelStart != 2000 || p.NextLevelXP != 3000 || p.Percent != 25 {
		t.Errorf("ProgressForXP = %+v", p)
	}
}

func TestBMI(t *testing.T) {
	if got := BMI(70, 175); got != 22.9 {
		t.Errorf("BMI = %v, want 22.9", got)
	}
	if BMI(70, 0) != 0 {
		t.Error("zero height should give 0")
	}
	for bmi, want := range map[float64]string{17: "Underweight", 22.9: "Normal", 27: "Overweight", 31: "Obese"} {
		if got := BMICategory(bmi); got != want {
			t.Errorf("BMICategory(%v) = %s, want %s", bmi, got, want)
		}
	}
}

func TestEstimateCalories(t *testing.T) {
	if got := EstimateCalories("Running", 30, 70); got != 280 {
		t.Errorf("running = %d, want 280", got)
	}
	if got := EstimateCalories("underwater basket weaving", 60, 70); got != 280 {
		t.Errorf("default MET = %d, want 280", got)
	}
}
