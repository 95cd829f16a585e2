// ABOUTME: Challenge progress inside the current day, ISO week, or month.
// ABOUTME: Timeframe keys identify one period of one challenge for at-most-once credit.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/models"
)

// Period is a closed time window [Start, End].
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PeriodFor returns the window containing now. Weeks run Monday to Sunday.
func PeriodFor(tf models.Timeframe, now time.Time) Period {
	day := clock.StartOfDay(now)
	var start, next time.Time
	switch tf {
	case models.Weekly:
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		next = start.AddDate(0, 0, 7)
	case models.Monthly:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		next = start.AddDate(0, 1, 0)
	default:
		start = day
		next = day.AddDate(0, 0, 1)
	}
	return Period{Start: start, End: next.Add(-time.Nanosecond)}
}

// TimeframeKey names the period of def that contains now.
func TimeframeKey(def models.ChallengeDefinition, now time.Time) string {
	switch def.Timeframe {
	case models.Weekly:
		year, week := now.ISOWeek()
		return fmt.Sprintf("%s_week_%d_%d", def.ID, week, year)
	case models.Monthly:
		return fmt.Sprintf("%s_%d_%d", def.ID, int(now.Month()), now.Year())
	default:
		return fmt.Sprintf("%s_%s", def.ID, now.Format("2006-01-02"))
	}
}

// ChallengeStatus is a challenge's standing in its current period.
type ChallengeStatus struct {
	models.ChallengeDefinition
	Current   int       `json:"current"`
	Progress  float64   `json:"progress"`
	Key       string    `json:"key"`
	EndsAt    time.Time `json:"endsAt"`
	Completed bool      `json:"completed"`
}

// Done reports whether the target has been reached this period.
func (c ChallengeStatus) Done() bool {
	return c.Current >= c.Target
}

// ChallengeProgress measures def over the workouts inside its current period.
// Streak challenges read the current streak from s. Completed is left false;
// callers set it from the persisted completion set.
func ChallengeProgress(def models.ChallengeDefinition, workouts []models.Workout, s models.UserStats, now time.Time) ChallengeStatus {
	p := PeriodFor(def.Timeframe, now)

	var inPeriod []models.Workout
	for _, w := range workouts {
		if !w.CreatedAt.Before(p.Start) && !w.CreatedAt.After(p.End) {
			inPeriod = append(inPeriod, w)
		}
	}

	current := 0
	switch def.Metric {
	case models.MetricWorkouts:
		current = len(inPeriod)
	case models.MetricCalories:
		for _, w := range inPeriod {
			current += w.CaloriesBurned
		}
	case models.MetricActiveDays:
		current = ActiveDaysBetween(inPeriod, p.Start, p.End)
	case models.MetricStreak:
		current = s.CurrentStreak
	}

	progress := 0.0
	if def.Target > 0 {
		progress = math.Min(float64(current)/float64(def.Target), 1) * 100
	}

	return ChallengeStatus{
		ChallengeDefinition: def,
		Current:             current,
		Progress:            progress,
		Key:                 TimeframeKey(def, now),
		EndsAt:              p.End,
	}
}

// TimeRemaining formats how long is left until end, like "3d 4h remaining".
func TimeRemaining(end, now time.Time) string {
	diff := end.Sub(now)
	if diff <= 0 {
		return "Expired"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh remaining", days, hours)
	}
	return fmt.Sprintf("%dh remaining", hours)
}
