// ABOUTME: Tests for record constructors, patches, IDs, and catalog lookups.
// ABOUTME: Uses a fixed timestamp so results are deterministic.
package models

import (
	"testing"
	"time"
)

func fixedTime() time.Time {
	return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
}

func TestNewIDUniqueAndSortable(t *testing.T) {
	now := fixedTime()
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 1000; i++ {
		id := NewID(now)
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if id <= prev {
			t.Fatalf("ids not increasing: %s after %s", id, prev)
		}
		prev = id
	}

	if later := NewID(now.Add(time.Second)); later <= prev {
		t.Errorf("later timestamp produced smaller id")
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile(fixedTime())

	if p.Name != "Fitness Enthusiast" || p.Age != 30 || p.Weight != 70 || p.Height != 175 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.Goal != "maintenance" || p.ActivityLevel != "moderate" {
		t.Errorf("unexpected goal/activity: %+v", p)
	}
}

func TestProfilePatchIsShallow(t *testing.T) {
	p := DefaultProfile(fixedTime())
	name := "Sam"
	ProfilePatch{Name: &name}.Apply(&p)

	if p.Name != "Sam" {
		t.Errorf("Name = %s, want Sam", p.Name)
	}
	if p.Age != 30 || p.Goal != "maintenance" {
		t.Error("patch touched fields it did not set")
	}
}

func TestGoalsPatch(t *testing.T) {
	g := DefaultGoals()
	water := 3.0
	GoalsPatch{WaterIntake: &water}.Apply(&g)

	if g.WaterIntake != 3 || g.DailySteps != 10000 {
		t.Errorf("unexpected goals: %+v", g)
	}
}

func TestWorkoutCalories(t *testing.T) {
	pushups, _ := ExerciseByID("push-ups")
	squats, _ := ExerciseByID("squats")
	entries := []WorkoutExercise{
		NewWorkoutExercise(pushups, 3, 10, 0, 60),
		NewWorkoutExercise(squats, 3, 12, 0, 60),
	}

	// (8 + 6) cal/min over 10 minutes
	if got := WorkoutCalories(entries, 600); got != 140 {
		t.Errorf("WorkoutCalories = %d, want 140", got)
	}
	// 14 * 45/60 = 10.5 rounds up
	if got := WorkoutCalories(entries, 45); got != 11 {
		t.Errorf("WorkoutCalories = %d, want 11", got)
	}
	if got := WorkoutCalories(nil, 600); got != 0 {
		t.Errorf("WorkoutCalories(nil) = %d, want 0", got)
	}
}

func TestNewWorkoutExerciseCopiesCatalog(t *testing.T) {
	burpees, ok := ExerciseByID("burpees")
	if !ok {
		t.Fatal("burpees missing from catalog")
	}
	entry := NewWorkoutExercise(burpees, 4, 15, 0, 30)

	if entry.ID == "" {
		t.Error("expected entry id")
	}
	if entry.ExerciseID != "burpees" || entry.CaloriesPerMinute != 12 || entry.Category != "cardio" {
		t.Errorf("unexpected entry: %+v", entry)
	}

	draft := CurrentWorkout{Exercises: []WorkoutExercise{entry}}
	if draft.Find(entry.ID) != 0 {
		t.Error("Find did not locate entry")
	}
	if draft.Find("nope") != -1 {
		t.Error("Find located a missing entry")
	}
}

func TestParseMealType(t *testing.T) {
	tests := []struct {
		in      string
		want    MealType
		wantErr bool
	}{
		{"breakfast", Breakfast, false},
		{" Dinner ", Dinner, false},
		{"SNACK", Snack, false},
		{"brunch", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMealType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMealType(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMealType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMealFromFoodScales(t *testing.T) {
	banana, _ := FoodByID("banana")
	m := MealFromFood(banana, Snack, 2)

	if m.Calories != 210 || m.Carbs != 54 || m.Quantity != 2 {
		t.Errorf("unexpected meal: %+v", m)
	}
	if m.FoodID != "banana" || m.MealType != Snack {
		t.Errorf("unexpected identity: %+v", m)
	}

	if one := MealFromFood(banana, Snack, 0); one.Quantity != 1 || one.Calories != 105 {
		t.Errorf("zero quantity should mean one serving: %+v", one)
	}
}

func TestSearchFoods(t *testing.T) {
	if got := SearchFoods("RICE"); len(got) != 1 || got[0].ID != "brown-rice" {
		t.Errorf("SearchFoods(RICE) = %+v", got)
	}
	if got := SearchFoods("("); len(got) != len(Foods()) {
		t.Errorf("expected every food name to contain '(', got %d", len(got))
	}
	if got := SearchFoods("  "); got == nil || len(got) != 0 {
		t.Errorf("blank query should return empty slice, got %v", got)
	}
}

func TestSuggestionByName(t *testing.T) {
	s, mt, ok := SuggestionByName("turkey stir-fry")
	if !ok {
		t.Fatal("expected suggestion to be found")
	}
	if mt != Dinner || s.Calories != 420 {
		t.Errorf("got %s %+v", mt, s)
	}
	for _, mt := range MealTypes {
		if len(Suggestions(mt)) != 2 {
			t.Errorf("%s has %d suggestions, want 2", mt, len(Suggestions(mt)))
		}
	}
}

func TestExercisesFilter(t *testing.T) {
	if got := len(Exercises("")); got != 8 {
		t.Errorf("Exercises() = %d entries, want 8", got)
	}
	for _, ex := range Exercises("cardio") {
		if ex.Category != "cardio" {
			t.Errorf("%s is not cardio", ex.ID)
		}
	}
}
