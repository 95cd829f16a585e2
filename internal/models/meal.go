// ABOUTME: Meal log records and meal type validation.
// ABOUTME: Meals copy their nutrition values from a food or suggestion at log time.
package models

import (
	"fmt"
	"strings"
	"time"
)

// MealType is the slot a meal was eaten in.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists meal types in the order they happen in a day.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// ParseMealType validates s case-insensitively.
func ParseMealType(s string) (MealType, error) {
	mt := MealType(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range MealTypes {
		if mt == valid {
			return mt, nil
		}
	}
	return "", fmt.Errorf("invalid meal type %q (want breakfast, lunch, dinner, or snack)", s)
}

// Meal is one logged food item or dish.
type Meal struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	FoodID    string    `json:"foodId,omitempty" yaml:"foodId,omitempty"`
	Name      string    `json:"name" yaml:"name"`
	MealType  MealType  `json:"mealType" yaml:"mealType"`
	Calories  float64   `json:"calories" yaml:"calories"`
	Protein   float64   `json:"protein" yaml:"protein"`
	Carbs     float64   `json:"carbs" yaml:"carbs"`
	Fat       float64   `json:"fat" yaml:"fat"`
	Category  string    `json:"category,omitempty" yaml:"category,omitempty"`
	Quantity  float64   `json:"quantity" yaml:"quantity"`
}

// MealFromFood scales a catalog food by quantity servings.
func MealFromFood(f Food, mealType MealType, quantity float64) Meal {
	if quantity <= 0 {
		quantity = 1
	}
	return Meal{
		FoodID:   f.ID,
		Name:     f.Name,
		MealType: mealType,
		Calories: f.Calories * quantity,
		Protein:  f.Protein * quantity,
		Carbs:    f.Carbs * quantity,
		Fat:      f.Fat * quantity,
		Category: f.Category,
		Quantity: quantity,
	}
}

// MealFromSuggestion logs a whole suggested dish as one serving.
func MealFromSuggestion(s MealSuggestion, mealType MealType) Meal {
	return Meal{
		Name:     s.Name,
		MealType: mealType,
		Calories: s.Calories,
		Protein:  s.Protein,
		Carbs:    s.Carbs,
		Fat:      s.Fat,
		Category: "suggestion",
		Quantity: 1,
	}
}

// MealPatch holds the meal fields to overwrite.
type MealPatch struct {
	Name     *string   `json:"name,omitempty"`
	MealType *MealType `json:"mealType,omitempty"`
	Calories *float64  `json:"calories,omitempty"`
	Protein  *float64  `json:"protein,omitempty"`
	Carbs    *float64  `json:"carbs,omitempty"`
	Fat      *float64  `json:"fat,omitempty"`
	Category *string   `json:"category,omitempty"`
	Quantity *float64  `json:"quantity,omitempty"`
}

// Apply merges the patch into m.
func (patch MealPatch) Apply(m *Meal) {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.MealType != nil {
		m.MealType = *patch.MealType
	}
	if patch.Calories != nil {
		m.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		m.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		m.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		m.Fat = *patch.Fat
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Quantity != nil {
		m.Quantity = *patch.Quantity
	}
}
