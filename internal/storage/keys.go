// ABOUTME: Persisted key layout under the store namespace.
// ABOUTME: Every repository reads and writes only the keys named here.
package storage

const (
	KeyUserProfile         = "user_profile"
	KeyUserGoals           = "user_goals"
	KeyWorkouts            = "workouts"
	KeyCurrentWorkout      = "current_workout"
	KeyMeals               = "meals"
	KeyAchievements        = "achievements"
	KeyUserStats           = "user_stats"
	KeyCompletedChallenges = "completed_challenges"
	KeyTimerSeconds        = "timer_seconds"
	KeyLastUpdateCheck     = "last_update_check"
)
