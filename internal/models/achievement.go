// ABOUTME: Achievement definitions, unlocked achievement records, and the
// ABOUTME: threshold condition interpreter that decides when one unlocks.
package models

import (
	"fmt"
	"time"
)

// StatField names a numeric field of UserStats a condition can test.
type StatField string

const (
	FieldTotalWorkouts       StatField = "totalWorkouts"
	FieldTotalCaloriesBurned StatField = "totalCaloriesBurned"
	FieldCurrentStreak       StatField = "currentStreak"
	FieldLongestStreak       StatField = "longestStreak"
	FieldLevel               StatField = "level"
	FieldXP                  StatField = "xp"
)

// Value reads the field from s.
func (f StatField) Value(s UserStats) (int, bool) {
	switch f {
	case FieldTotalWorkouts:
		return s.TotalWorkouts, true
	case FieldTotalCaloriesBurned:
		return s.TotalCaloriesBurned, true
	case FieldCurrentStreak:
		return s.CurrentStreak, true
	case FieldLongestStreak:
		return s.LongestStreak, true
	case FieldLevel:
		return s.Level, true
	case FieldXP:
		return s.XP, true
	}
	return 0, false
}

// Op is a comparison operator.
type Op string

const (
	OpGTE Op = ">="
	OpGT  Op = ">"
	OpEQ  Op = "=="
	OpLTE Op = "<="
	OpLT  Op = "<"
)

// Condition is a threshold test over one stats field.
type Condition struct {
	Field StatField `json:"field" yaml:"field"`
	Op    Op        `json:"op" yaml:"op"`
	Value int       `json:"value" yaml:"value"`
}

// Threshold is shorthand for the common "field >= value" condition.
func Threshold(field StatField, value int) Condition {
	return Condition{Field: field, Op: OpGTE, Value: value}
}

// Eval reports whether s satisfies the condition. Unknown fields or
// operators never match.
func (c Condition) Eval(s UserStats) bool {
	v, ok := c.Field.Value(s)
	if !ok {
		return false
	}
	switch c.Op {
	case OpGTE:
		return v >= c.Value
	case OpGT:
		return v > c.Value
	case OpEQ:
		return v == c.Value
	case OpLTE:
		return v <= c.Value
	case OpLT:
		return v < c.Value
	}
	return false
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %d", c.Field, c.Op, c.Value)
}

// AchievementDefinition is a static rule that unlocks an achievement.
type AchievementDefinition struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"`
	Category    string    `json:"category" yaml:"category"`
	XPReward    int       `json:"xpReward" yaml:"xpReward"`
	Condition   Condition `json:"condition" yaml:"condition"`
}

var achievementDefinitions = []AchievementDefinition{
	{
		ID: "first_workout", Title: "First Steps", Description: "Complete your first workout",
		Icon: "fas fa-dumbbell", Category: "workout", XPReward: 100,
		Condition: Threshold(FieldTotalWorkouts, 1),
	},
	{
		ID: "week_streak", Title: "Consistency", Description: "Maintain a 7-day workout streak",
		Icon: "fas fa-fire", Category: "consistency", XPReward: 250,
		Condition: Threshold(FieldCurrentStreak, 7),
	},
	{
		ID: "calorie_burner", Title: "Calorie Crusher", Description: "Burn 10,000 calories total",
		Icon: "fas fa-fire-alt", Category: "milestone", XPReward: 500,
		Condition: Threshold(FieldTotalCaloriesBurned, 10000),
	},
	{
		ID: "hundred_workouts", Title: "Century Club", Description: "Complete 100 workouts",
		Icon: "fas fa-trophy", Category: "workout", XPReward: 1000,
		Condition: Threshold(FieldTotalWorkouts, 100),
	},
	{
		ID: "total_workouts_50", Title: "Half Century", Description: "Complete 50 total workouts",
		Icon: "fas fa-medal", Category: "workout", XPReward: 500,
		Condition: Threshold(FieldTotalWorkouts, 50),
	},
	{
		ID: "month_streak", Title: "Monthly Master", Description: "Complete workouts for 30 days straight",
		Icon: "fas fa-calendar-check", Category: "consistency", XPReward: 1000,
		Condition: Threshold(FieldCurrentStreak, 30),
	},
	{
		ID: "calories_50k", Title: "Inferno", Description: "Burn 50,000 total calories",
		Icon: "fas fa-burn", Category: "milestone", XPReward: 2000,
		Condition: Threshold(FieldTotalCaloriesBurned, 50000),
	},
	{
		ID: "level_10", Title: "Rising Star", Description: "Reach level 10",
		Icon: "fas fa-star", Category: "milestone", XPReward: 1000,
		Condition: Threshold(FieldLevel, 10),
	},
	{
		ID: "level_25", Title: "Fitness Legend", Description: "Reach level 25",
		Icon: "fas fa-crown", Category: "milestone", XPReward: 2500,
		Condition: Threshold(FieldLevel, 25),
	},
}

// AchievementDefinitions returns every achievement rule.
func AchievementDefinitions() []AchievementDefinition {
	out := make([]AchievementDefinition, len(achievementDefinitions))
	copy(out, achievementDefinitions)
	return out
}

// AchievementDefinitionByID looks up a rule.
func AchievementDefinitionByID(id string) (AchievementDefinition, bool) {
	for _, d := range achievementDefinitions {
		if d.ID == id {
			return d, true
		}
	}
	return AchievementDefinition{}, false
}

// Achievement is an unlocked instance of a definition.
type Achievement struct {
	ID            string    `json:"id" yaml:"id"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
	AchievementID string    `json:"achievementId" yaml:"achievementId"`
	Title         string    `json:"title" yaml:"title"`
	Description   string    `json:"description" yaml:"description"`
	Icon          string    `json:"icon" yaml:"icon"`
	XPReward      int       `json:"xpReward" yaml:"xpReward"`
	UnlockedAt    time.Time `json:"unlockedAt" yaml:"unlockedAt"`
}

// NewAchievement builds the unlocked record for def. ID and CreatedAt are
// assigned when it is stored.
func NewAchievement(def AchievementDefinition, unlockedAt time.Time) Achievement {
	return Achievement{
		AchievementID: def.ID,
		Title:         def.Title,
		Description:   def.Description,
		Icon:          def.Icon,
		XPReward:      def.XPReward,
		UnlockedAt:    unlockedAt,
	}
}
