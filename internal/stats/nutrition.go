// ABOUTME: Nutrition aggregates over logged meals.
// ABOUTME: Sums calories and macros per day, per week, and per meal type.
package stats

import (
	"math"
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/models"
)

// NutritionSummary totals a set of meals.
type NutritionSummary struct {
	Meals    int     `json:"meals"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// SummarizeNutrition sums every meal.
func SummarizeNutrition(meals []models.Meal) NutritionSummary {
	var s NutritionSummary
	for _, m := range meals {
		s.Meals++
		s.Calories += m.Calories
		s.Protein += m.Protein
		s.Carbs += m.Carbs
		s.Fat += m.Fat
	}
	return s
}

// DailyNutrition sums the meals logged on day's calendar date.
func DailyNutrition(meals []models.Meal, day time.Time) NutritionSummary {
	var sameDay []models.Meal
	for _, m := range meals {
		if clock.SameDay(m.CreatedAt, day, day.Location()) {
			sameDay = append(sameDay, m)
		}
	}
	return SummarizeNutrition(sameDay)
}

// DayNutrition is one day of a weekly breakdown.
type DayNutrition struct {
	Date time.Time `json:"date"`
	NutritionSummary
}

// WeeklyNutrition returns the seven days ending on end's date, oldest first.
func WeeklyNutrition(meals []models.Meal, end time.Time) []DayNutrition {
	last := clock.StartOfDay(end)
	out := make([]DayNutrition, 0, 7)
	for i := 6; i >= 0; i-- {
		day := last.AddDate(0, 0, -i)
		out = append(out, DayNutrition{Date: day, NutritionSummary: DailyNutrition(meals, day)})
	}
	return out
}

// ByMealType splits the summary by breakfast, lunch, dinner, and snack.
func ByMealType(meals []models.Meal) map[models.MealType]NutritionSummary {
	grouped := make(map[models.MealType][]models.Meal)
	for _, m := range meals {
		grouped[m.MealType] = append(grouped[m.MealType], m)
	}
	out := make(map[models.MealType]NutritionSummary, len(models.MealTypes))
	for _, mt := range models.MealTypes {
		out[mt] = SummarizeNutrition(grouped[mt])
	}
	return out
}

// Macros is the share of calories from each macronutrient, in whole percent.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroPercentages uses 4 kcal/g for protein and carbs and 9 kcal/g for fat.
// With no macros at all every share is 0.
func MacroPercentages(s NutritionSummary) Macros {
	p, c, f := s.Protein*4, s.Carbs*4, s.Fat*9
	total := p + c + f
	if total <= 0 {
		return Macros{}
	}
	return Macros{
		Protein: int(math.Round(p / total * 100)),
		Carbs:   int(math.Round(c / total * 100)),
		Fat:     int(math.Round(f / total * 100)),
	}
}
