// ABOUTME: Tracker orchestrates repositories into user-level actions.
// ABOUTME: Saving a workout updates stats, unlocks achievements, and credits challenges.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/harperreed/fittracker/internal/storage"
)

var (
	ErrEmptyWorkout        = errors.New("current workout has no exercises")
	ErrUnknownExercise     = errors.New("unknown exercise")
	ErrUnknownFood         = errors.New("unknown food")
	ErrUnknownSuggestion   = errors.New("unknown meal suggestion")
	ErrEntryNotFound       = errors.New("exercise not in current workout")
	ErrInvalidInput        = errors.New("invalid input")
	ErrStorageWriteFailure = errors.New("storage write failed")
)

// Deps are the collaborators a Tracker needs.
type Deps struct {
	Store        *kv.Store
	Clock        clock.Clock
	User         *storage.UserRepo
	Workouts     *storage.WorkoutRepo
	Meals        *storage.MealRepo
	Achievements *storage.AchievementRepo
	Challenges   *storage.ChallengeRepo
	Scratch      *storage.ScratchRepo
}

// Tracker is the application's use-case layer.
type Tracker struct {
	store        *kv.Store
	clock        clock.Clock
	user         *storage.UserRepo
	workouts     *storage.WorkoutRepo
	meals        *storage.MealRepo
	achievements *storage.AchievementRepo
	challenges   *storage.ChallengeRepo
	scratch      *storage.ScratchRepo
}

// New creates a Tracker.
func New(d Deps) *Tracker {
	return &Tracker{
		store:        d.Store,
		clock:        d.Clock,
		user:         d.User,
		workouts:     d.Workouts,
		meals:        d.Meals,
		achievements: d.Achievements,
		challenges:   d.Challenges,
		scratch:      d.Scratch,
	}
}

// CurrentWorkout returns the draft, empty if none is in progress.
func (t *Tracker) CurrentWorkout() models.CurrentWorkout {
	cw, _ := t.workouts.Current()
	return cw
}

// AddExercise appends a catalog exercise to the draft.
func (t *Tracker) AddExercise(exerciseID string, sets, reps int, weight float64, restTime int) (models.WorkoutExercise, error) {
	ex, ok := models.ExerciseByID(exerciseID)
	if !ok {
		return models.WorkoutExercise{}, fmt.Errorf("%w: %s", ErrUnknownExercise, exerciseID)
	}
	if err := validateEntry(sets, reps, weight, restTime); err != nil {
		return models.WorkoutExercise{}, err
	}

	cw, _ := t.workouts.Current()
	entry := models.NewWorkoutExercise(ex, sets, reps, weight, restTime)
	cw.Exercises = append(cw.Exercises, entry)
	if !t.workouts.SetCurrent(cw) {
		return models.WorkoutExercise{}, ErrStorageWriteFailure
	}
	return entry, nil
}

func validateEntry(sets, reps int, weight float64, restTime int) error {
	switch {
	case sets < 1:
		return fmt.Errorf("%w: sets must be at least 1", ErrInvalidInput)
	case reps < 1:
		return fmt.Errorf("%w: reps must be at least 1", ErrInvalidInput)
	case weight < 0:
		return fmt.Errorf("%w: weight cannot be negative", ErrInvalidInput)
	case restTime < 0:
		return fmt.Errorf("%w: rest time cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ExercisePatch changes a draft entry. Nil fields are left alone.
type ExercisePatch struct {
	Sets      *int
	Reps      *int
	Weight    *float64
	RestTime  *int
	Completed *bool
}

// UpdateExercise edits a draft entry by ID.
func (t *Tracker) UpdateExercise(entryID string, patch ExercisePatch) (models.WorkoutExercise, error) {
	cw, _ := t.workouts.Current()
	i := cw.Find(entryID)
	if i < 0 {
		return models.WorkoutExercise{}, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}

	e := cw.Exercises[i]
	if patch.Sets != nil {
		e.Sets = *patch.Sets
	}
	if patch.Reps != nil {
		e.Reps = *patch.Reps
	}
	if patch.Weight != nil {
		e.Weight = *patch.Weight
	}
	if patch.RestTime != nil {
		e.RestTime = *patch.RestTime
	}
	if patch.Completed != nil {
		e.Completed = *patch.Completed
	}
	if err := validateEntry(e.Sets, e.Reps, e.Weight, e.RestTime); err != nil {
		return models.WorkoutExercise{}, err
	}

	cw.Exercises[i] = e
	if !t.workouts.SetCurrent(cw) {
		return models.WorkoutExercise{}, ErrStorageWriteFailure
	}
	return e, nil
}

// RemoveExercise drops a draft entry by ID.
func (t *Tracker) RemoveExercise(entryID string) error {
	cw, _ := t.workouts.Current()
	i := cw.Find(entryID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}
	cw.Exercises = append(cw.Exercises[:i], cw.Exercises[i+1:]...)
	if !t.workouts.SetCurrent(cw) {
		return ErrStorageWriteFailure
	}
	return nil
}

// ClearWorkout discards the draft and the running timer value.
func (t *Tracker) ClearWorkout() error {
	okDraft := t.workouts.ClearCurrent()
	okTimer := t.scratch.ClearTimer()
	if !okDraft || !okTimer {
		return ErrStorageWriteFailure
	}
	return nil
}

// SaveOptions controls how the draft becomes a workout.
type SaveOptions struct {
	// DurationSeconds is the workout length. Ignored when UseTimer is set.
	DurationSeconds int
	// UseTimer takes the duration from the persisted timer value.
	UseTimer bool
	// AvgHeartRate is optional; 0 means not recorded.
	AvgHeartRate int
}

// SaveResult describes everything that changed when a workout was saved.
type SaveResult struct {
	Workout             models.Workout          `json:"workout"`
	Stats               models.UserStats        `json:"stats"`
	Unlocked            []models.Achievement    `json:"unlocked"`
	CompletedChallenges []stats.ChallengeStatus `json:"completedChallenges"`
}

// SaveWorkout turns the draft into a history entry. Calories assume every
// exercise ran for the whole duration. It then updates totals and streaks,
// checks achievements and challenges, and clears the draft and timer.
func (t *Tracker) SaveWorkout(opts SaveOptions) (*SaveResult, error) {
	cw, _ := t.workouts.Current()
	if len(cw.Exercises) == 0 {
		return nil, ErrEmptyWorkout
	}

	duration := opts.DurationSeconds
	if opts.UseTimer {
		duration = t.scratch.TimerSeconds()
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration cannot be negative", ErrInvalidInput)
	}
	if opts.AvgHeartRate < 0 {
		return nil, fmt.Errorf("%w: heart rate cannot be negative", ErrInvalidInput)
	}

	now := t.clock.Now()
	saved, ok := t.workouts.Add(models.Workout{
		Exercises:      cw.Exercises,
		Duration:       duration,
		CaloriesBurned: models.WorkoutCalories(cw.Exercises, duration),
		CompletedAt:    now,
		AvgHeartRate:   opts.AvgHeartRate,
	})
	if !ok {
		return nil, ErrStorageWriteFailure
	}

	prev := t.achievements.Stats()
	current, longest := stats.Streak(t.workouts.List(), now)
	longest = max(longest, prev.LongestStreak)
	totalWorkouts := prev.TotalWorkouts + 1
	totalCalories := prev.TotalCaloriesBurned + saved.CaloriesBurned
	if !t.achievements.UpdateStats(models.StatsPatch{
		TotalWorkouts:       &totalWorkouts,
		TotalCaloriesBurned: &totalCalories,
		CurrentStreak:       &current,
		LongestStreak:       &longest,
	}) {
		return nil, ErrStorageWriteFailure
	}

	res := &SaveResult{Workout: saved}
	res.Unlocked = t.achievements.CheckAchievements(t.achievements.Stats())
	res.CompletedChallenges = t.CheckChallenges()

	t.workouts.ClearCurrent()
	t.scratch.ClearTimer()

	res.Stats = t.achievements.Stats()
	return res, nil
}

// DeleteWorkout removes a workout from history. Stats totals are left as
// they were, matching how XP is never taken back.
func (t *Tracker) DeleteWorkout(idOrPrefix string) (models.Workout, error) {
	w, ok := t.workouts.Get(idOrPrefix)
	if !ok {
		return models.Workout{}, fmt.Errorf("workout not found: %s", idOrPrefix)
	}
	if !t.workouts.Delete(w.ID) {
		return models.Workout{}, ErrStorageWriteFailure
	}
	return w, nil
}

// LogFood logs quantity servings of a catalog food.
func (t *Tracker) LogFood(foodID string, mealType models.MealType, quantity float64) (models.Meal, error) {
	food, ok := models.FoodByID(foodID)
	if !ok {
		return models.Meal{}, fmt.Errorf("%w: %s", ErrUnknownFood, foodID)
	}
	if quantity < 0 {
		return models.Meal{}, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	return t.addMeal(models.MealFromFood(food, mealType, quantity))
}

// LogSuggestion logs a suggested dish. An empty meal type uses the
// suggestion's own.
func (t *Tracker) LogSuggestion(name string, mealType models.MealType) (models.Meal, error) {
	s, own, ok := models.SuggestionByName(name)
	if !ok {
		return models.Meal{}, fmt.Errorf("%w: %s", ErrUnknownSuggestion, name)
	}
	if mealType == "" {
		mealType = own
	}
	return t.addMeal(models.MealFromSuggestion(s, mealType))
}

// LogCustomMeal logs a meal the user described themselves.
func (t *Tracker) LogCustomMeal(m models.Meal) (models.Meal, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return models.Meal{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return models.Meal{}, fmt.Errorf("%w: nutrition values cannot be negative", ErrInvalidInput)
	}
	if m.Category == "" {
		m.Category = "custom"
	}
	return t.addMeal(m)
}

func (t *Tracker) addMeal(m models.Meal) (models.Meal, error) {
	if _, err := models.ParseMealType(string(m.MealType)); err != nil {
		return models.Meal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	saved, ok := t.meals.Add(m)
	if !ok {
		return models.Meal{}, ErrStorageWriteFailure
	}
	return saved, nil
}

// DeleteMeal removes a meal from the log.
func (t *Tracker) DeleteMeal(idOrPrefix string) (models.Meal, error) {
	m, ok := t.meals.Get(idOrPrefix)
	if !ok {
		return models.Meal{}, fmt.Errorf("meal not found: %s", idOrPrefix)
	}
	if !t.meals.Delete(m.ID) {
		return models.Meal{}, ErrStorageWriteFailure
	}
	return m, nil
}
