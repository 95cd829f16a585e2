// ABOUTME: Scratch values: the running timer's elapsed seconds and the last update check.
// ABOUTME: These are transient and excluded from the complete backup.
package storage

import (
	"time"

	"github.com/harperreed/fittracker/internal/kv"
)

// UpdateCheckInterval is how often DueForUpdateCheck fires.
const UpdateCheckInterval = 24 * time.Hour

// ScratchRepo owns timer_seconds and last_update_check.
type ScratchRepo struct {
	store *kv.Store
}

// NewScratchRepo creates the repository.
func NewScratchRepo(store *kv.Store) *ScratchRepo {
	return &ScratchRepo{store: store}
}

// TimerSeconds returns the persisted elapsed seconds, or 0.
func (r *ScratchRepo) TimerSeconds() int {
	var s int
	if !r.store.Get(KeyTimerSeconds, &s) || s < 0 {
		return 0
	}
	return s
}

// SetTimerSeconds persists the elapsed seconds.
func (r *ScratchRepo) SetTimerSeconds(s int) bool {
	return r.store.Set(KeyTimerSeconds, s)
}

// ClearTimer removes the persisted elapsed seconds.
func (r *ScratchRepo) ClearTimer() bool {
	return r.store.Remove(KeyTimerSeconds)
}

// LastUpdateCheck returns when the last update check happened.
func (r *ScratchRepo) LastUpdateCheck() (time.Time, bool) {
	var ms int64
	if !r.store.Get(KeyLastUpdateCheck, &ms) {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// DueForUpdateCheck reports whether a day has passed since the last check
// and, if so, records now as the new last check.
func (r *ScratchRepo) DueForUpdateCheck(now time.Time) bool {
	if last, ok := r.LastUpdateCheck(); ok && now.Sub(last) < UpdateCheckInterval {
		return false
	}
	r.store.Set(KeyLastUpdateCheck, now.UnixMilli())
	return true
}
