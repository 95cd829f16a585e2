// ABOUTME: User profile and goals singletons.
// ABOUTME: Both are created with defaults on first read and updated by shallow merge.
package models

import "time"

// UserProfile describes the person using the tracker.
type UserProfile struct {
	Name          string    `json:"name" yaml:"name"`
	Age           int       `json:"age" yaml:"age"`
	Weight        float64   `json:"weight" yaml:"weight"`
	Height        float64   `json:"height" yaml:"height"`
	Goal          string    `json:"goal" yaml:"goal"`
	ActivityLevel string    `json:"activityLevel" yaml:"activityLevel"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
}

// DefaultProfile is what a fresh install sees.
func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{
		Name:          "Fitness Enthusiast",
		Age:           30,
		Weight:        70,
		Height:        175,
		Goal:          "maintenance",
		ActivityLevel: "moderate",
		CreatedAt:     now,
	}
}

// ProfilePatch holds the profile fields to overwrite. Nil fields are left alone.
type ProfilePatch struct {
	Name          *string  `json:"name,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
	ActivityLevel *string  `json:"activityLevel,omitempty"`
}

// Apply merges the patch into p.
func (patch ProfilePatch) Apply(p *UserProfile) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.Goal != nil {
		p.Goal = *patch.Goal
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
}

// UserGoals are the daily and weekly targets shown on the dashboard.
type UserGoals struct {
	DailySteps    int     `json:"dailySteps" yaml:"dailySteps"`
	DailyCalories int     `json:"dailyCalories" yaml:"dailyCalories"`
	WaterIntake   float64 `json:"waterIntake" yaml:"waterIntake"`
	SleepHours    float64 `json:"sleepHours" yaml:"sleepHours"`
	WorkoutDays   int     `json:"workoutDays" yaml:"workoutDays"`
}

// DefaultGoals returns the goals used until the user sets their own.
func DefaultGoals() UserGoals {
	return UserGoals{
		DailySteps:    10000,
		DailyCalories: 2000,
		WaterIntake:   2.5,
		SleepHours:    8,
		WorkoutDays:   4,
	}
}

// GoalsPatch holds the goal fields to overwrite.
type GoalsPatch struct {
	DailySteps    *int     `json:"dailySteps,omitempty"`
	DailyCalories *int     `json:"dailyCalories,omitempty"`
	WaterIntake   *float64 `json:"waterIntake,omitempty"`
	SleepHours    *float64 `json:"sleepHours,omitempty"`
	WorkoutDays   *int     `json:"workoutDays,omitempty"`
}

// Apply merges the patch into g.
func (patch GoalsPatch) Apply(g *UserGoals) {
	if patch.DailySteps != nil {
		g.DailySteps = *patch.DailySteps
	}
	if patch.DailyCalories != nil {
		g.DailyCalories = *patch.DailyCalories
	}
	if patch.WaterIntake != nil {
		g.WaterIntake = *patch.WaterIntake
	}
	if patch.SleepHours != nil {
		g.SleepHours = *patch.SleepHours
	}
	if patch.WorkoutDays != nil {
		g.WorkoutDays = *patch.WorkoutDays
	}
}
