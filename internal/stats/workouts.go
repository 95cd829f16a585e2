// ABOUTME: Workout aggregates: daily totals, heart rate, and streaks.
// ABOUTME: Streaks are computed from the distinct calendar days with a workout.
package stats

import (
	"math"
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/models"
)

// DefaultHeartRate is reported when workouts exist but none recorded a heart rate.
const DefaultHeartRate = 142

// WorkoutSummary totals a set of workouts.
type WorkoutSummary struct {
	Workouts       int `json:"workouts"`
	CaloriesBurned int `json:"caloriesBurned"`
	Duration       int `json:"duration"`
	AvgHeartRate   int `json:"avgHeartRate"`
}

// SummarizeWorkouts sums calories and duration and averages heart rate.
func SummarizeWorkouts(workouts []models.Workout) WorkoutSummary {
	s := WorkoutSummary{Workouts: len(workouts), AvgHeartRate: AverageHeartRate(workouts)}
	for _, w := range workouts {
		s.CaloriesBurned += w.CaloriesBurned
		s.Duration += w.Duration
	}
	return s
}

// DailyWorkoutStats summarizes the workouts created on day's calendar date.
func DailyWorkoutStats(workouts []models.Workout, day time.Time) WorkoutSummary {
	var sameDay []models.Workout
	for _, w := range workouts {
		if clock.SameDay(w.CreatedAt, day, day.Location()) {
			sameDay = append(sameDay, w)
		}
	}
	return SummarizeWorkouts(sameDay)
}

// AverageHeartRate averages the positive heart rates. It returns 0 for no
// workouts and DefaultHeartRate when none of them recorded one.
func AverageHeartRate(workouts []models.Workout) int {
	if len(workouts) == 0 {
		return 0
	}
	sum, n := 0, 0
	for _, w := range workouts {
		if w.AvgHeartRate > 0 {
			sum += w.AvgHeartRate
			n++
		}
	}
	if n == 0 {
		return DefaultHeartRate
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// activeDays returns the set of local midnights with at least one workout.
func activeDays(workouts []models.Workout, loc *time.Location) map[time.Time]bool {
	days := make(map[time.Time]bool)
	for _, w := range workouts {
		days[clock.StartOfDay(w.CreatedAt.In(loc))] = true
	}
	return days
}

// Streak returns the current and longest runs of consecutive workout days.
// The current streak is still alive if the last workout was yesterday.
func Streak(workouts []models.Workout, now time.Time) (current, longest int) {
	loc := now.Location()
	days := activeDays(workouts, loc)
	if len(days) == 0 {
		return 0, 0
	}

	for day := range days {
		if days[day.AddDate(0, 0, -1)] {
			continue
		}
		run := 0
		for d := day; days[d]; d = d.AddDate(0, 0, 1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}

	today := clock.StartOfDay(now)
	start := today
	if !days[today] {
		start = today.AddDate(0, 0, -1)
	}
	for d := start; days[d]; d = d.AddDate(0, 0, -1) {
		current++
	}
	return current, longest
}

// ActiveDaysBetween counts distinct days in [start, end] with a workout.
func ActiveDaysBetween(workouts []models.Workout, start, end time.Time) int {
	var in []models.Workout
	for _, w := range workouts {
		if !w.CreatedAt.Before(start) && !w.CreatedAt.After(end) {
			in = append(in, w)
		}
	}
	return len(activeDays(in, start.Location()))
}
