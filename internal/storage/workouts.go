// ABOUTME: Workout history repository plus the single in-progress draft slot.
// ABOUTME: Adding a workout never touches user stats; that is the service's job.
package storage

import (
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
)

// WorkoutRepo stores completed workouts newest first.
type WorkoutRepo struct {
	c collection[models.Workout]
}

// NewWorkoutRepo creates a workout repository over store.
func NewWorkoutRepo(store *kv.Store, clk clock.Clock) *WorkoutRepo {
	return &WorkoutRepo{c: collection[models.Workout]{
		store:     store,
		clock:     clk,
		key:       KeyWorkouts,
		id:        func(w *models.Workout) *string { return &w.ID },
		createdAt: func(w *models.Workout) *time.Time { return &w.CreatedAt },
	}}
}

// List returns every workout, most recent first.
func (r *WorkoutRepo) List() []models.Workout {
	return r.c.list()
}

// Add stores w with a new ID and creation time and returns the stored record.
func (r *WorkoutRepo) Add(w models.Workout) (models.Workout, bool) {
	if w.Exercises == nil {
		w.Exercises = []models.WorkoutExercise{}
	}
	return r.c.add(w)
}

// Get finds a workout by ID or unique ID prefix.
func (r *WorkoutRepo) Get(idOrPrefix string) (models.Workout, bool) {
	return r.c.get(idOrPrefix)
}

// Update merges patch into the workout with the given ID.
func (r *WorkoutRepo) Update(id string, patch models.WorkoutPatch) bool {
	return r.c.update(id, patch.Apply)
}

// Delete removes a workout. Deleting an unknown ID succeeds without change.
func (r *WorkoutRepo) Delete(id string) bool {
	return r.c.remove(id)
}

// ByDateRange returns workouts created within [start, end].
func (r *WorkoutRepo) ByDateRange(start, end time.Time) []models.Workout {
	return r.c.between(start, end)
}

// Today returns workouts created on the current calendar day.
func (r *WorkoutRepo) Today() []models.Workout {
	return r.c.today()
}

// OnDate returns workouts created on day's calendar date.
func (r *WorkoutRepo) OnDate(day time.Time) []models.Workout {
	return r.c.onDate(day)
}

// Current returns the draft workout, if one is in progress.
func (r *WorkoutRepo) Current() (models.CurrentWorkout, bool) {
	var cw models.CurrentWorkout
	if !r.c.store.Get(KeyCurrentWorkout, &cw) {
		return models.CurrentWorkout{Exercises: []models.WorkoutExercise{}}, false
	}
	if cw.Exercises == nil {
		cw.Exercises = []models.WorkoutExercise{}
	}
	return cw, true
}

// SetCurrent replaces the draft. A zero start time is set to now.
func (r *WorkoutRepo) SetCurrent(cw models.CurrentWorkout) bool {
	if cw.StartTime.IsZero() {
		cw.StartTime = r.c.clock.Now()
	}
	if cw.Exercises == nil {
		cw.Exercises = []models.WorkoutExercise{}
	}
	return r.c.store.Set(KeyCurrentWorkout, cw)
}

// ClearCurrent discards the draft.
func (r *WorkoutRepo) ClearCurrent() bool {
	return r.c.store.Remove(KeyCurrentWorkout)
}

func (r *WorkoutRepo) importWorkouts(ws []models.Workout) (added, skipped int, ok bool) {
	return r.c.appendImported(ws, nil)
}
