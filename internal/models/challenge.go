// ABOUTME: Static challenge definitions with a metric, target, and timeframe.
// ABOUTME: Progress is measured per period; completion is credited once per period.
package models

// Timeframe is the window a challenge resets on.
type Timeframe string

const (
	Daily   Timeframe = "daily"
	Weekly  Timeframe = "weekly"
	Monthly Timeframe = "monthly"
)

// ChallengeMetric is what a challenge counts inside its window.
type ChallengeMetric string

const (
	// MetricWorkouts counts workouts completed in the window.
	MetricWorkouts ChallengeMetric = "workouts"
	// MetricCalories sums calories burned in the window.
	MetricCalories ChallengeMetric = "calories"
	// MetricActiveDays counts distinct days with at least one workout.
	MetricActiveDays ChallengeMetric = "active_days"
	// MetricStreak reads the current streak from stats.
	MetricStreak ChallengeMetric = "streak"
)

// ChallengeDefinition is a time-boxed goal that pays XP once per period.
type ChallengeDefinition struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Metric      ChallengeMetric `json:"metric" yaml:"metric"`
	Target      int             `json:"target" yaml:"target"`
	Timeframe   Timeframe       `json:"timeframe" yaml:"timeframe"`
	XPReward    int             `json:"xpReward" yaml:"xpReward"`
}

var challengeDefinitions = []ChallengeDefinition{
	{
		ID: "weekly-workouts", Title: "Weekly Warrior", Description: "Complete 5 workouts this week",
		Metric: MetricWorkouts, Target: 5, Timeframe: Weekly, XPReward: 500,
	},
	{
		ID: "calorie-burn", Title: "Calorie Crusher", Description: "Burn 2000 calories this week",
		Metric: MetricCalories, Target: 2000, Timeframe: Weekly, XPReward: 750,
	},
	{
		ID: "daily-calories", Title: "Daily Burn", Description: "Burn 300 calories today",
		Metric: MetricCalories, Target: 300, Timeframe: Daily, XPReward: 100,
	},
	{
		ID: "monthly-consistency", Title: "Monthly Grind", Description: "Work out on 20 different days this month",
		Metric: MetricActiveDays, Target: 20, Timeframe: Monthly, XPReward: 1500,
	},
	{
		ID: "consistency", Title: "Consistency King", Description: "Maintain a 10-day streak",
		Metric: MetricStreak, Target: 10, Timeframe: Monthly, XPReward: 1000,
	},
}

// ChallengeDefinitions returns every active challenge.
func ChallengeDefinitions() []ChallengeDefinition {
	out := make([]ChallengeDefinition, len(challengeDefinitions))
	copy(out, challengeDefinitions)
	return out
}

// ChallengeDefinitionByID looks up a challenge.
func ChallengeDefinitionByID(id string) (ChallengeDefinition, bool) {
	for _, d := range challengeDefinitions {
		if d.ID == id {
			return d, true
		}
	}
	return ChallengeDefinition{}, false
}
