// ABOUTME: Persisted set of challenge timeframe keys already credited.
// ABOUTME: A key is marked at most once so XP is paid once per period.
package storage

import (
	"github.com/harperreed/fittracker/internal/kv"
)

// ChallengeRepo owns the completed_challenges key.
type ChallengeRepo struct {
	store *kv.Store
}

// NewChallengeRepo creates the repository.
func NewChallengeRepo(store *kv.Store) *ChallengeRepo {
	return &ChallengeRepo{store: store}
}

// Completed returns every credited timeframe key in completion order.
func (r *ChallengeRepo) Completed() []string {
	var keys []string
	if !r.store.Get(KeyCompletedChallenges, &keys) || keys == nil {
		return []string{}
	}
	return keys
}

// IsCompleted reports whether key has been credited.
func (r *ChallengeRepo) IsCompleted(key string) bool {
	for _, k := range r.Completed() {
		if k == key {
			return true
		}
	}
	return false
}

// MarkCompleted records key. Marking an already recorded key is a no-op.
func (r *ChallengeRepo) MarkCompleted(key string) bool {
	keys := r.Completed()
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return r.store.Set(KeyCompletedChallenges, append(keys, key))
}
