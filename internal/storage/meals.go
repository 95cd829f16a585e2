// ABOUTME: Nutrition log repository.
// ABOUTME: Meals are kept newest first and filtered in memory by day.
package storage

import (
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
)

// MealRepo stores logged meals.
type MealRepo struct {
	c collection[models.Meal]
}

// NewMealRepo creates a meal repository over store.
func NewMealRepo(store *kv.Store, clk clock.Clock) *MealRepo {
	return &MealRepo{c: collection[models.Meal]{
		store:     store,
		clock:     clk,
		key:       KeyMeals,
		id:        func(m *models.Meal) *string { return &m.ID },
		createdAt: func(m *models.Meal) *time.Time { return &m.CreatedAt },
	}}
}

// List returns every meal, most recent first.
func (r *MealRepo) List() []models.Meal {
	return r.c.list()
}

// Add stores m with a new ID and creation time.
func (r *MealRepo) Add(m models.Meal) (models.Meal, bool) {
	if m.Quantity == 0 {
		m.Quantity = 1
	}
	return r.c.add(m)
}

// Get finds a meal by ID or unique ID prefix.
func (r *MealRepo) Get(idOrPrefix string) (models.Meal, bool) {
	return r.c.get(idOrPrefix)
}

// Update merges patch into the meal with the given ID.
func (r *MealRepo) Update(id string, patch models.MealPatch) bool {
	return r.c.update(id, patch.Apply)
}

// Delete removes a meal. Deleting an unknown ID succeeds without change.
func (r *MealRepo) Delete(id string) bool {
	return r.c.remove(id)
}

// ByDateRange returns meals created within [start, end].
func (r *MealRepo) ByDateRange(start, end time.Time) []models.Meal {
	return r.c.between(start, end)
}

// Today returns meals logged on the current calendar day.
func (r *MealRepo) Today() []models.Meal {
	return r.c.today()
}

// OnDate returns meals logged on day's calendar date.
func (r *MealRepo) OnDate(day time.Time) []models.Meal {
	return r.c.onDate(day)
}

func (r *MealRepo) importMeals(ms []models.Meal) (added, skipped int, ok bool) {
	return r.c.appendImported(ms, nil)
}
