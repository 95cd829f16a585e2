// ABOUTME: Gamification state: XP, level, totals, and streaks.
// ABOUTME: Level is always derived from XP and never stored independently.
package models

import "time"

// XPPerLevel is how much XP each level takes.
const XPPerLevel = 1000

// LevelForXP maps total XP to a level starting at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// UserStats is the singleton gamification record.
type UserStats struct {
	Level               int       `json:"level" yaml:"level"`
	XP                  int       `json:"xp" yaml:"xp"`
	TotalWorkouts       int       `json:"totalWorkouts" yaml:"totalWorkouts"`
	TotalCaloriesBurned int       `json:"totalCaloriesBurned" yaml:"totalCaloriesBurned"`
	LongestStreak       int       `json:"longestStreak" yaml:"longestStreak"`
	CurrentStreak       int       `json:"currentStreak" yaml:"currentStreak"`
	Badges              []string  `json:"badges" yaml:"badges"`
	JoinDate            time.Time `json:"joinDate" yaml:"joinDate"`
}

// DefaultStats is a brand new user at level 1.
func DefaultStats(now time.Time) UserStats {
	return UserStats{
		Level:    1,
		Badges:   []string{},
		JoinDate: now,
	}
}

// StatsPatch holds the stats fields to overwrite. Level is recomputed from XP
// after every apply and cannot be patched.
type StatsPatch struct {
	XP                  *int      `json:"xp,omitempty"`
	TotalWorkouts       *int      `json:"totalWorkouts,omitempty"`
	TotalCaloriesBurned *int      `json:"totalCaloriesBurned,omitempty"`
	LongestStreak       *int      `json:"longestStreak,omitempty"`
	CurrentStreak       *int      `json:"currentStreak,omitempty"`
	Badges              *[]string `json:"badges,omitempty"`
}

// Apply merges the patch into s.
func (patch StatsPatch) Apply(s *UserStats) {
	if patch.XP != nil && *patch.XP >= 0 {
		s.XP = *patch.XP
	}
	if patch.TotalWorkouts != nil {
		s.TotalWorkouts = *patch.TotalWorkouts
	}
	if patch.TotalCaloriesBurned != nil {
		s.TotalCaloriesBurned = *patch.TotalCaloriesBurned
	}
	if patch.LongestStreak != nil {
		s.LongestStreak = *patch.LongestStreak
	}
	if patch.CurrentStreak != nil {
		s.CurrentStreak = *patch.CurrentStreak
	}
	if patch.Badges != nil {
		s.Badges = *patch.Badges
	}
	s.Level = LevelForXP(s.XP)
}
