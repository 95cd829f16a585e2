// ABOUTME: Tests for application wiring.
// ABOUTME: Verifies repositories share one store and options are applied.
package app

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/storage"
)

func TestNewSharesOneStore(t *testing.T) {
	backend := kv.NewMemoryBackend()
	clk := clock.NewFixed(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	a := New(backend, WithClock(clk), WithLogger(log.New(io.Discard)))
	defer a.Close()

	a.Meals.Add(models.Meal{Name: "Banana", MealType: models.Snack})

	keys, _ := backend.Keys()
	if len(keys) != 1 || keys[0] != kv.DefaultPrefix+storage.KeyMeals {
		t.Errorf("backend keys = %v", keys)
	}
	if got := a.Tracker.AppStatistics().TotalMeals; got != 1 {
		t.Errorf("tracker sees %d meals, want 1", got)
	}
	if !a.Meals.List()[0].CreatedAt.Equal(clk.Now()) {
		t.Error("clock option not applied")
	}
}

func TestWithNotifierAndPrefix(t *testing.T) {
	var events []storage.Event
	backend := kv.NewMemoryBackend()
	a := New(backend, WithPrefix("test_"), WithNotifier(func(e storage.Event) { events = append(events, e) }))

	a.Achievements.AwardXP(1000)

	if len(events) != 1 || events[0].Kind != storage.EventLevelUp {
		t.Errorf("events = %+v", events)
	}
	if _, err := backend.Get("test_" + storage.KeyUserStats); err != nil {
		t.Errorf("prefix not applied: %v", err)
	}
}

func TestIsolatedInstances(t *testing.T) {
	a := NewInMemory()
	b := NewInMemory()

	a.Workouts.Add(models.Workout{Duration: 60})

	if len(b.Workouts.List()) != 0 {
		t.Error("in-memory apps should not share data")
	}
}
