// ABOUTME: Profile and goals singletons with lazy default initialization.
// ABOUTME: The first read of an absent record writes and returns the defaults.
package storage

import (
	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
)

// UserRepo owns the user_profile and user_goals keys.
type UserRepo struct {
	store *kv.Store
	clock clock.Clock
}

// NewUserRepo creates a user repository over store.
func NewUserRepo(store *kv.Store, clk clock.Clock) *UserRepo {
	return &UserRepo{store: store, clock: clk}
}

// Profile returns the stored profile, creating the default one if absent.
func (r *UserRepo) Profile() models.UserProfile {
	var p models.UserProfile
	if r.store.Get(KeyUserProfile, &p) {
		return p
	}
	p = models.DefaultProfile(r.clock.Now())
	r.store.Set(KeyUserProfile, p)
	return p
}

// UpdateProfile merges patch into the profile.
func (r *UserRepo) UpdateProfile(patch models.ProfilePatch) bool {
	p := r.Profile()
	patch.Apply(&p)
	return r.store.Set(KeyUserProfile, p)
}

// Goals returns the stored goals, creating the defaults if absent.
func (r *UserRepo) Goals() models.UserGoals {
	var g models.UserGoals
	if r.store.Get(KeyUserGoals, &g) {
		return g
	}
	g = models.DefaultGoals()
	r.store.Set(KeyUserGoals, g)
	return g
}

// UpdateGoals merges patch into the goals.
func (r *UserRepo) UpdateGoals(patch models.GoalsPatch) bool {
	g := r.Goals()
	patch.Apply(&g)
	return r.store.Set(KeyUserGoals, g)
}
