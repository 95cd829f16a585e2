// ABOUTME: Tests for challenge periods, timeframe keys, and progress.
// ABOUTME: Verifies counters reset at day, ISO week, and month boundaries.
package stats

import (
	"testing"
	"time"

	"github.com/harperreed/fittracker/internal/models"
)

func TestPeriodFor(t *testing.T) {
	tests := []struct {
		tf        models.Timeframe
		wantStart time.Time
		wantNext  time.Time
	}{
		{models.Daily, at(15, 0), at(16, 0)},
		{models.Weekly, at(11, 0), at(18, 0)},
		{models.Monthly, at(1, 0), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			p := PeriodFor(tt.tf, now)
			if !p.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", p.Start, tt.wantStart)
			}
			if !p.End.Equal(tt.wantNext.Add(-time.Nanosecond)) {
				t.Errorf("End = %v, want just before %v", p.End, tt.wantNext)
			}
		})
	}

	sunday := time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)
	if p := PeriodFor(models.Weekly, sunday); !p.Start.Equal(at(11, 0)) {
		t.Errorf("Sunday belongs to week starting %v", p.Start)
	}
}

func TestTimeframeKey(t *testing.T) {
	weekly, _ := models.ChallengeDefinitionByID("weekly-workouts")
	daily, _ := models.ChallengeDefinitionByID("daily-calories")
	monthly, _ := models.ChallengeDefinitionByID("monthly-consistency")

	if got := TimeframeKey(weekly, now); got != "weekly-workouts_week_11_2024" {
		t.Errorf("weekly key = %s", got)
	}
	if got := TimeframeKey(daily, now); got != "daily-calories_2024-03-15" {
		t.Errorf("daily key = %s", got)
	}
	if got := TimeframeKey(monthly, now); got != "monthly-consistency_3_2024" {
		t.Errorf("monthly key = %s", got)
	}

	// 2024-12-30 is in ISO week 1 of 2025.
	if got := TimeframeKey(weekly, time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC)); got != "weekly-workouts_week_1_2025" {
		t.Errorf("year-boundary key = %s", got)
	}
}

func TestChallengeProgressCountsOnlyCurrentPeriod(t *testing.T) {
	weekly, _ := models.ChallengeDefinitionByID("weekly-workouts")
	workouts := []models.Workout{
		workoutOn(at(15, 9), 300, 600, 0),
		workoutOn(at(13, 9), 300, 600, 0),
		workoutOn(at(11, 0), 300, 600, 0),
		workoutOn(at(10, 23), 300, 600, 0), // previous week
	}

	got := ChallengeProgress(weekly, workouts, models.UserStats{}, now)
	if got.Current != 3 {
		t.Errorf("Current = %d, want 3", got.Current)
	}
	if got.Progress != 60 {
		t.Errorf("Progress = %v, want 60", got.Progress)
	}
	if got.Done() {
		t.Error("3 of 5 should not be done")
	}
	if got.Key != "weekly-workouts_week_11_2024" {
		t.Errorf("Key = %s", got.Key)
	}
}

func TestChallengeProgressMetrics(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(at(15, 9), 200, 600, 0),
		workoutOn(at(15, 12), 150, 600, 0),
		workoutOn(at(2, 9), 100, 600, 0),
		workoutOn(time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC), 999, 600, 0),
	}

	daily, _ := models.ChallengeDefinitionByID("daily-calories")
	d := ChallengeProgress(daily, workouts, models.UserStats{}, now)
	if d.Current != 350 || d.Progress != 100 || !d.Done() {
		t.Errorf("daily-calories = %+v", d)
	}

	monthly, _ := models.ChallengeDefinitionByID("monthly-consistency")
	m := ChallengeProgress(monthly, workouts, models.UserStats{}, now)
	if m.Current != 2 {
		t.Errorf("active days = %d, want 2", m.Current)
	}

	streak, _ := models.ChallengeDefinitionByID("consistency")
	s := ChallengeProgress(streak, nil, models.UserStats{CurrentStreak: 4}, now)
	if s.Current != 4 || s.Progress != 40 {
		t.Errorf("streak = %+v", s)
	}
}

func TestTimeRemaining(t *testing.T) {
	if got := TimeRemaining(now.Add(52*time.Hour), now); got != "2d 4h remaining" {
		t.Errorf("got %q", got)
	}
	if got := TimeRemaining(now.Add(5*time.Hour), now); got != "5h remaining" {
		t.Errorf("got %q", got)
	}
	if got := TimeRemaining(now.Add(-time.Hour), now); got != "Expired" {
		t.Errorf("got %q", got)
	}
}
