// ABOUTME: MCP tool implementations for workouts, meals, and progress.
// ABOUTME: Each handler delegates to the tracker or a repository on the app context.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/service"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// nutrition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food database by name",
	}, s.handleSearchFoods)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log servings of a food from the food database",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a custom meal or a named meal suggestion",
	}, s.handleLogMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List logged meals, optionally for a single day",
	}, s.handleListMeals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a meal by ID or ID prefix",
	}, s.handleDeleteMeal)

	// workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise from the exercise database to the current workout",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "current_workout",
		Description: "Show the workout in progress",
	}, s.handleCurrentWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_workout",
		Description: "Save the current workout to history and update progress",
	}, s.handleSaveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List saved workouts, newest first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a saved workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	// progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get level, XP, totals, and streaks",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "award_xp",
		Description: "Award experience points",
	}, s.handleAwardXP)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_achievements",
		Description: "Unlock any achievements the current stats qualify for",
	}, s.handleCheckAchievements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_achievements",
		Description: "List unlocked achievements and the ones still locked",
	}, s.handleListAchievements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_challenges",
		Description: "List challenges with progress for the current period",
	}, s.handleListChallenges)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_profile",
		Description: "Update the user profile",
	}, s.handleUpdateProfile)
}

// Tool input/output types

type searchFoodsInput struct {
	Query string `json:"query" jsonschema:"Text to match against food names"`
}

type logFoodInput struct {
	FoodID   string  `json:"food_id" jsonschema:"Food ID from search_foods"`
	MealType string  `json:"meal_type" jsonschema:"breakfast, lunch, dinner, or snack"`
	Quantity float64 `json:"quantity,omitempty" jsonschema:"Number of servings (default 1)"`
}

type logMealInput struct {
	Suggestion string  `json:"suggestion,omitempty" jsonschema:"Name of a meal suggestion to log instead of a custom meal"`
	Name       string  `json:"name,omitempty" jsonschema:"Meal name for a custom meal"`
	MealType   string  `json:"meal_type,omitempty" jsonschema:"breakfast, lunch, dinner, or snack"`
	Calories   float64 `json:"calories,omitempty" jsonschema:"Calories (kcal)"`
	Protein    float64 `json:"protein,omitempty" jsonschema:"Protein (g)"`
	Carbs      float64 `json:"carbs,omitempty" jsonschema:"Carbohydrates (g)"`
	Fat        float64 `json:"fat,omitempty" jsonschema:"Fat (g)"`
}

type mealOutput struct {
	ID      string      `json:"id"`
	Meal    models.Meal `json:"meal"`
	Message string      `json:"message"`
}

type listMealsInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Day to list (YYYY-MM-DD), defaults to all days"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listMealsOutput struct {
	Meals   []models.Meal          `json:"meals"`
	Summary stats.NutritionSummary `json:"summary"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Record ID or unique prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addExerciseInput struct {
	ExerciseID string  `json:"exercise_id" jsonschema:"Exercise ID (push-ups, squats, running, ...)"`
	Sets       int     `json:"sets,omitempty" jsonschema:"Number of sets (default 3)"`
	Reps       int     `json:"reps,omitempty" jsonschema:"Reps per set (default 10)"`
	Weight     float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	RestTime   int     `json:"rest_time,omitempty" jsonschema:"Rest between sets in seconds (default 60)"`
}

type emptyInput struct{}

type saveWorkoutInput struct {
	DurationMinutes int  `json:"duration_minutes,omitempty" jsonschema:"Workout length in minutes"`
	UseTimer        bool `json:"use_timer,omitempty" jsonschema:"Take the duration from the workout timer"`
	AvgHeartRate    int  `json:"avg_heart_rate,omitempty" jsonschema:"Average heart rate in bpm"`
}

type listWorkoutsInput struct {
	Days  int `json:"days,omitempty" jsonschema:"Only workouts from the last N days"`
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type awardXPInput struct {
	Amount int `json:"amount" jsonschema:"XP to award"`
}

type achievementsOutput struct {
	Unlocked []models.Achievement           `json:"unlocked"`
	Locked   []models.AchievementDefinition `json:"locked"`
}

type challengesOutput struct {
	Challenges []stats.ChallengeStatus `json:"challenges"`
}

type updateProfileInput struct {
	Name          *string  `json:"name,omitempty" jsonschema:"Display name"`
	Age           *int     `json:"age,omitempty" jsonschema:"Age in years"`
	Weight        *float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Height        *float64 `json:"height,omitempty" jsonschema:"Height in cm"`
	Goal          *string  `json:"goal,omitempty" jsonschema:"Fitness goal"`
	ActivityLevel *string  `json:"activity_level,omitempty" jsonschema:"Activity level"`
}

// Tool handlers

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchFoodsInput) (*mcp.CallToolResult, map[string][]models.Food, error) {
	return nil, map[string][]models.Food{"foods": models.SearchFoods(input.Query)}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, mealOutput, error) {
	mt, err := models.ParseMealType(input.MealType)
	if err != nil {
		return nil, mealOutput{}, err
	}

	m, err := s.app.Tracker.LogFood(input.FoodID, mt, input.Quantity)
	if err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, mealOutput{
		ID:      shortID(m.ID),
		Meal:    m,
		Message: fmt.Sprintf("Logged %s for %s: %.0f kcal (ID: %s)", m.Name, m.MealType, m.Calories, shortID(m.ID)),
	}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, mealOutput, error) {
	var mt models.MealType
	if input.MealType != "" {
		parsed, err := models.ParseMealType(input.MealType)
		if err != nil {
			return nil, mealOutput{}, err
		}
		mt = parsed
	}

	var (
		m   models.Meal
		err error
	)
	if input.Suggestion != "" {
		m, err = s.app.Tracker.LogSuggestion(input.Suggestion, mt)
	} else {
		if mt == "" {
			return nil, mealOutput{}, fmt.Errorf("meal_type is required for a custom meal")
		}
		m, err = s.app.Tracker.LogCustomMeal(models.Meal{
			Name:     input.Name,
			MealType: mt,
			Calories: input.Calories,
			Protein:  input.Protein,
			Carbs:    input.Carbs,
			Fat:      input.Fat,
		})
	}
	if err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	return nil, mealOutput{
		ID:      shortID(m.ID),
		Meal:    m,
		Message: fmt.Sprintf("Logged %s for %s: %.0f kcal (ID: %s)", m.Name, m.MealType, m.Calories, shortID(m.ID)),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, listMealsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	meals := s.app.Meals.List()
	if input.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", input.Date, s.app.Clock.Now().Location())
		if err != nil {
			return nil, listMealsOutput{}, fmt.Errorf("invalid date %q: %w", input.Date, err)
		}
		meals = s.app.Meals.OnDate(day)
	}

	out := listMealsOutput{Summary: stats.SummarizeNutrition(meals)}
	out.Meals = meals[:min(input.Limit, len(meals))]
	return nil, out, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	m, err := s.app.Tracker.DeleteMeal(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted meal: %s (%s)", m.Name, shortID(m.ID)),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, models.WorkoutExercise, error) {
	if input.Sets == 0 {
		input.Sets = 3
	}
	if input.Reps == 0 {
		input.Reps = 10
	}
	if input.RestTime == 0 {
		input.RestTime = 60
	}

	entry, err := s.app.Tracker.AddExercise(input.ExerciseID, input.Sets, input.Reps, input.Weight, input.RestTime)
	if err != nil {
		return nil, models.WorkoutExercise{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	return nil, entry, nil
}

func (s *Server) handleCurrentWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.CurrentWorkout, error) {
	return nil, s.app.Tracker.CurrentWorkout(), nil
}

func (s *Server) handleSaveWorkout(ctx context.Context, req *mcp.CallToolRequest, input saveWorkoutInput) (*mcp.CallToolResult, service.SaveResult, error) {
	res, err := s.app.Tracker.SaveWorkout(service.SaveOptions{
		DurationSeconds: input.DurationMinutes * 60,
		UseTimer:        input.UseTimer,
		AvgHeartRate:    input.AvgHeartRate,
	})
	if err != nil {
		return nil, service.SaveResult{}, fmt.Errorf("failed to save workout: %w", err)
	}
	return nil, *res, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, map[string][]models.Workout, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts := s.app.Workouts.List()
	if input.Days > 0 {
		now := s.app.Clock.Now()
		workouts = s.app.Workouts.ByDateRange(now.AddDate(0, 0, -input.Days), now)
	}

	return nil, map[string][]models.Workout{"workouts": workouts[:min(input.Limit, len(workouts))]}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.app.Tracker.DeleteWorkout(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", shortID(w.ID)),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.UserStats, error) {
	return nil, s.app.Achievements.Stats(), nil
}

func (s *Server) handleAwardXP(ctx context.Context, req *mcp.CallToolRequest, input awardXPInput) (*mcp.CallToolResult, any, error) {
	if input.Amount <= 0 {
		return nil, nil, fmt.Errorf("amount must be positive, got %d", input.Amount)
	}
	res, ok := s.app.Achievements.AwardXP(input.Amount)
	if !ok {
		return nil, nil, service.ErrStorageWriteFailure
	}
	return nil, res, nil
}

func (s *Server) handleCheckAchievements(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, map[string][]models.Achievement, error) {
	unlocked := s.app.Achievements.CheckAchievements(s.app.Achievements.Stats())
	return nil, map[string][]models.Achievement{"unlocked": unlocked}, nil
}

func (s *Server) handleListAchievements(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, achievementsOutput, error) {
	out := achievementsOutput{
		Unlocked: s.app.Achievements.List(),
		Locked:   []models.AchievementDefinition{},
	}
	for _, def := range models.AchievementDefinitions() {
		if !s.app.Achievements.Unlocked(def.ID) {
			out.Locked = append(out.Locked, def)
		}
	}
	return nil, out, nil
}

func (s *Server) handleListChallenges(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, challengesOutput, error) {
	return nil, challengesOutput{Challenges: s.app.Tracker.Challenges()}, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, req *mcp.CallToolRequest, input updateProfileInput) (*mcp.CallToolResult, models.UserProfile, error) {
	patch := models.ProfilePatch{
		Name:          input.Name,
		Age:           input.Age,
		Weight:        input.Weight,
		Height:        input.Height,
		Goal:          input.Goal,
		ActivityLevel: input.ActivityLevel,
	}
	if !s.app.User.UpdateProfile(patch) {
		return nil, models.UserProfile{}, service.ErrStorageWriteFailure
	}
	return nil, s.app.User.Profile(), nil
}

// shortID trims an ID for display the way list output does.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
