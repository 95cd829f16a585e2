// ABOUTME: Built-in reference data: exercises, foods, and meal suggestions.
// ABOUTME: These tables are compiled in and never persisted.
package models

import "strings"

// Exercise is a catalog entry that can be added to a workout.
type Exercise struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Category          string   `json:"category" yaml:"category"`
	Difficulty        string   `json:"difficulty" yaml:"difficulty"`
	Description       string   `json:"description" yaml:"description"`
	Muscles           []string `json:"muscles" yaml:"muscles"`
	Equipment         string   `json:"equipment" yaml:"equipment"`
	CaloriesPerMinute float64  `json:"caloriesPerMinute" yaml:"caloriesPerMinute"`
}

var exercises = []Exercise{
	{"push-ups", "Push-ups", "strength", "beginner", "Classic bodyweight exercise for chest, shoulders, and triceps", []string{"chest", "shoulders", "triceps", "core"}, "none", 8},
	{"squats", "Squats", "strength", "beginner", "Fundamental lower body exercise", []string{"quadriceps", "glutes", "hamstrings"}, "none", 6},
	{"burpees", "Burpees", "cardio", "intermediate", "Full-body high-intensity exercise", []string{"full-body"}, "none", 12},
	{"plank", "Plank", "strength", "beginner", "Isometric core strengthening exercise", []string{"core", "shoulders", "back"}, "none", 4},
	{"jumping-jacks", "Jumping Jacks", "cardio", "beginner", "Classic cardio warm-up exercise", []string{"full-body"}, "none", 8},
	{"mountain-climbers", "Mountain Climbers", "cardio", "intermediate", "Dynamic core and cardio exercise", []string{"core", "shoulders", "legs"}, "none", 10},
	{"lunges", "Lunges", "strength", "beginner", "Unilateral leg strengthening exercise", []string{"quadriceps", "glutes", "hamstrings"}, "none", 6},
	{"high-knees", "High Knees", "cardio", "beginner", "Running in place with high knee lift", []string{"legs", "core"}, "none", 9},
}

// Exercises returns the exercise catalog, optionally filtered by category.
func Exercises(category string) []Exercise {
	out := []Exercise{}
	for _, ex := range exercises {
		if category == "" || strings.EqualFold(ex.Category, category) {
			out = append(out, ex)
		}
	}
	return out
}

// ExerciseByID looks up an exercise.
func ExerciseByID(id string) (Exercise, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// Food is one serving of a catalog food.
type Food struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Category string  `json:"category" yaml:"category"`
}

var foods = []Food{
	{"banana", "Banana (medium)", 105, 1.3, 27, 0.4, "fruit"},
	{"chicken-breast", "Chicken Breast (100g)", 165, 31, 0, 3.6, "protein"},
	{"brown-rice", "Brown Rice (1 cup cooked)", 216, 5, 45, 1.8, "grain"},
	{"broccoli", "Broccoli (1 cup)", 25, 3, 5, 0.3, "vegetable"},
	{"salmon", "Salmon (100g)", 208, 25, 0, 12, "protein"},
	{"avocado", "Avocado (half)", 160, 2, 8.5, 14.7, "fruit"},
	{"oatmeal", "Oatmeal (1 cup cooked)", 154, 6, 28, 3, "grain"},
	{"greek-yogurt", "Greek Yogurt (1 cup)", 130, 23, 9, 0, "dairy"},
	{"almonds", "Almonds (1 oz)", 164, 6, 6, 14, "nuts"},
	{"sweet-potato", "Sweet Potato (medium)", 112, 2, 26, 0.1, "vegetable"},
}

// SearchFoods returns foods whose name contains query, ignoring case.
// An empty query matches nothing.
func SearchFoods(query string) []Food {
	out := []Food{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

// Foods returns the whole food table.
func Foods() []Food {
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// FoodByID looks up a food.
func FoodByID(id string) (Food, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return Food{}, false
}

// MealSuggestion is a ready-made dish.
type MealSuggestion struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Calories    float64  `json:"calories" yaml:"calories"`
	Protein     float64  `json:"protein" yaml:"protein"`
	Carbs       float64  `json:"carbs" yaml:"carbs"`
	Fat         float64  `json:"fat" yaml:"fat"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

var suggestions = map[MealType][]MealSuggestion{
	Breakfast: {
		{"Protein Power Bowl", "Greek yogurt with berries and granola", 320, 25, 35, 8, []string{"Greek yogurt", "Mixed berries", "Granola", "Honey"}},
		{"Avocado Toast", "Whole grain toast with avocado and egg", 280, 12, 25, 16, []string{"Whole grain bread", "Avocado", "Egg", "Salt", "Pepper"}},
	},
	Lunch: {
		{"Chicken Quinoa Bowl", "Grilled chicken with quinoa and vegetables", 450, 35, 40, 12, []string{"Chicken breast", "Quinoa", "Mixed vegetables", "Olive oil"}},
		{"Mediterranean Salad", "Fresh salad with feta and olive oil", 380, 15, 20, 28, []string{"Mixed greens", "Feta cheese", "Olives", "Tomatoes", "Olive oil"}},
	},
	Dinner: {
		{"Salmon & Sweet Potato", "Baked salmon with roasted sweet potato", 520, 35, 45, 18, []string{"Salmon fillet", "Sweet potato", "Broccoli", "Lemon"}},
		{"Turkey Stir-fry", "Lean turkey with mixed vegetables", 420, 32, 30, 15, []string{"Ground turkey", "Mixed vegetables", "Brown rice", "Soy sauce"}},
	},
	Snack: {
		{"Protein Smoothie", "Banana protein smoothie", 250, 20, 25, 6, []string{"Protein powder", "Banana", "Almond milk", "Spinach"}},
		{"Nuts & Fruit", "Mixed nuts with apple slices", 200, 6, 18, 12, []string{"Mixed nuts", "Apple", "Cinnamon"}},
	},
}

// Suggestions returns the suggestions for a meal type.
func Suggestions(mt MealType) []MealSuggestion {
	return append([]MealSuggestion{}, suggestions[mt]...)
}

// SuggestionByName finds a suggestion in any meal type, ignoring case, and
// reports which meal type it belongs to.
func SuggestionByName(name string) (MealSuggestion, MealType, bool) {
	for _, mt := range MealTypes {
		for _, s := range suggestions[mt] {
			if strings.EqualFold(s.Name, name) {
				return s, mt, true
			}
		}
	}
	return MealSuggestion{}, "", false
}
