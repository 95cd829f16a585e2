// ABOUTME: Workout history records and the in-progress workout draft.
// ABOUTME: A saved workout is a snapshot of the draft's exercises plus duration and calories.
package models

import (
	"math"
	"time"
)

// WorkoutExercise is one exercise inside a workout, with the user's sets and reps.
type WorkoutExercise struct {
	ID                string  `json:"id" yaml:"id"`
	ExerciseID        string  `json:"exerciseId" yaml:"exerciseId"`
	Name              string  `json:"name" yaml:"name"`
	Category          string  `json:"category" yaml:"category"`
	Sets              int     `json:"sets" yaml:"sets"`
	Reps              int     `json:"reps" yaml:"reps"`
	Weight            float64 `json:"weight" yaml:"weight"`
	RestTime          int     `json:"restTime" yaml:"restTime"`
	Completed         bool    `json:"completed" yaml:"completed"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute" yaml:"caloriesPerMinute"`
}

// NewWorkoutExercise builds a draft entry for a catalog exercise.
func NewWorkoutExercise(ex Exercise, sets, reps int, weight float64, restTime int) WorkoutExercise {
	return WorkoutExercise{
		ID:                NewEntryID(),
		ExerciseID:        ex.ID,
		Name:              ex.Name,
		Category:          ex.Category,
		Sets:              sets,
		Reps:              reps,
		Weight:            weight,
		RestTime:          restTime,
		CaloriesPerMinute: ex.CaloriesPerMinute,
	}
}

// Workout is a completed session in the history.
type Workout struct {
	ID             string            `json:"id" yaml:"id"`
	CreatedAt      time.Time         `json:"createdAt" yaml:"createdAt"`
	Exercises      []WorkoutExercise `json:"exercises" yaml:"exercises"`
	Duration       int               `json:"duration" yaml:"duration"`
	CaloriesBurned int               `json:"caloriesBurned" yaml:"caloriesBurned"`
	CompletedAt    time.Time         `json:"completedAt" yaml:"completedAt"`
	AvgHeartRate   int               `json:"avgHeartRate,omitempty" yaml:"avgHeartRate,omitempty"`
}

// WorkoutCalories estimates calories burned when every exercise runs for the
// whole duration, rounded to the nearest integer.
func WorkoutCalories(exercises []WorkoutExercise, durationSeconds int) int {
	total := 0.0
	for _, ex := range exercises {
		total += ex.CaloriesPerMinute * float64(durationSeconds) / 60
	}
	return int(math.Round(total))
}

// WorkoutPatch holds the workout fields to overwrite. ID and CreatedAt are never patched.
type WorkoutPatch struct {
	Exercises      *[]WorkoutExercise `json:"exercises,omitempty"`
	Duration       *int               `json:"duration,omitempty"`
	CaloriesBurned *int               `json:"caloriesBurned,omitempty"`
	CompletedAt    *time.Time         `json:"completedAt,omitempty"`
	AvgHeartRate   *int               `json:"avgHeartRate,omitempty"`
}

// Apply merges the patch into w.
func (patch WorkoutPatch) Apply(w *Workout) {
	if patch.Exercises != nil {
		w.Exercises = *patch.Exercises
	}
	if patch.Duration != nil {
		w.Duration = *patch.Duration
	}
	if patch.CaloriesBurned != nil {
		w.CaloriesBurned = *patch.CaloriesBurned
	}
	if patch.CompletedAt != nil {
		w.CompletedAt = *patch.CompletedAt
	}
	if patch.AvgHeartRate != nil {
		w.AvgHeartRate = *patch.AvgHeartRate
	}
}

// CurrentWorkout is the single mutable draft being edited before save.
type CurrentWorkout struct {
	Exercises []WorkoutExercise `json:"exercises" yaml:"exercises"`
	StartTime time.Time         `json:"startTime" yaml:"startTime"`
}

// Find returns the index of the entry with the given ID, or -1.
func (c *CurrentWorkout) Find(entryID string) int {
	for i, ex := range c.Exercises {
		if ex.ID == entryID {
			return i
		}
	}
	return -1
}
