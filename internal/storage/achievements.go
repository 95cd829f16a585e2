// ABOUTME: Unlocked achievements, the user stats singleton, and the XP engine.
// ABOUTME: Each achievement unlocks at most once and level always follows XP.
package storage

import (
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/harperreed/fittracker/internal/models"
)

// EventKind identifies a gamification notification.
type EventKind string

const (
	EventAchievementUnlocked EventKind = "achievement_unlocked"
	EventLevelUp             EventKind = "level_up"
	EventChallengeCompleted  EventKind = "challenge_completed"
)

// Event is sent to the notifier when something worth celebrating happens.
type Event struct {
	Kind        EventKind
	Title       string
	Description string
	XP          int
	Level       int
}

// Notifier receives gamification events. It must not call back into the repository.
type Notifier func(Event)

// XPResult reports the outcome of an XP award.
type XPResult struct {
	LeveledUp bool `json:"leveledUp"`
	NewLevel  int  `json:"newLevel"`
	NewXP     int  `json:"newXP"`
}

// AchievementRepo owns the achievements list and the user_stats singleton.
type AchievementRepo struct {
	c      collection[models.Achievement]
	notify Notifier
}

// NewAchievementRepo creates the repository. notify may be nil.
func NewAchievementRepo(store *kv.Store, clk clock.Clock, notify Notifier) *AchievementRepo {
	return &AchievementRepo{
		c: collection[models.Achievement]{
			store:     store,
			clock:     clk,
			key:       KeyAchievements,
			id:        func(a *models.Achievement) *string { return &a.ID },
			createdAt: func(a *models.Achievement) *time.Time { return &a.CreatedAt },
		},
		notify: notify,
	}
}

// SetNotifier replaces the event receiver.
func (r *AchievementRepo) SetNotifier(n Notifier) {
	r.notify = n
}

// Emit forwards e to the notifier, if any.
func (r *AchievementRepo) Emit(e Event) {
	if r.notify != nil {
		r.notify(e)
	}
}

// List returns unlocked achievements, most recent first.
func (r *AchievementRepo) List() []models.Achievement {
	return r.c.list()
}

// Unlocked reports whether the definition has already been unlocked.
func (r *AchievementRepo) Unlocked(achievementID string) bool {
	for _, a := range r.c.list() {
		if a.AchievementID == achievementID {
			return true
		}
	}
	return false
}

// Stats returns the stats singleton, creating the default if absent. Level
// is recomputed from XP on every read.
func (r *AchievementRepo) Stats() models.UserStats {
	var s models.UserStats
	if !r.c.store.Get(KeyUserStats, &s) {
		s = models.DefaultStats(r.c.clock.Now())
		r.c.store.Set(KeyUserStats, s)
		return s
	}
	if s.XP < 0 {
		s.XP = 0
	}
	if s.Badges == nil {
		s.Badges = []string{}
	}
	s.Level = models.LevelForXP(s.XP)
	return s
}

// UpdateStats merges patch into the stats.
func (r *AchievementRepo) UpdateStats(patch models.StatsPatch) bool {
	s := r.Stats()
	patch.Apply(&s)
	return r.c.store.Set(KeyUserStats, s)
}

// AwardXP adds amount to the user's XP and recomputes the level. Negative
// amounts are ignored. The bool is false if the new stats could not be saved.
func (r *AchievementRepo) AwardXP(amount int) (XPResult, bool) {
	s := r.Stats()
	if amount < 0 {
		amount = 0
	}
	oldLevel := s.Level
	s.XP += amount
	s.Level = models.LevelForXP(s.XP)
	if !r.c.store.Set(KeyUserStats, s) {
		return XPResult{NewLevel: oldLevel, NewXP: s.XP - amount}, false
	}

	res := XPResult{LeveledUp: s.Level > oldLevel, NewLevel: s.Level, NewXP: s.XP}
	if res.LeveledUp {
		r.Emit(Event{Kind: EventLevelUp, Title: "Level Up!", Level: s.Level, XP: s.XP})
	}
	return res, true
}

// CheckAchievements unlocks every definition whose condition holds for
// stats and that is not yet unlocked, awarding its XP. It returns the newly
// unlocked achievements; calling it again with the same stats unlocks nothing.
func (r *AchievementRepo) CheckAchievements(stats models.UserStats) []models.Achievement {
	unlocked := make(map[string]bool)
	for _, a := range r.c.list() {
		unlocked[a.AchievementID] = true
	}

	var added []models.Achievement
	for _, def := range models.AchievementDefinitions() {
		if unlocked[def.ID] || !def.Condition.Eval(stats) {
			continue
		}
		rec, ok := r.c.add(models.NewAchievement(def, r.c.clock.Now()))
		if !ok {
			continue
		}
		unlocked[def.ID] = true
		added = append(added, rec)
		r.Emit(Event{
			Kind:        EventAchievementUnlocked,
			Title:       def.Title,
			Description: def.Description,
			XP:          def.XPReward,
		})
		r.AwardXP(def.XPReward)
	}
	return added
}

// importAchievements appends records without awarding XP, skipping IDs or
// achievement IDs that are already present.
func (r *AchievementRepo) importAchievements(as []models.Achievement) (added, skipped int, ok bool) {
	have := make(map[string]bool)
	for _, a := range r.c.list() {
		have[a.AchievementID] = true
	}
	return r.c.appendImported(as, func(a models.Achievement) bool {
		if have[a.AchievementID] {
			return true
		}
		have[a.AchievementID] = true
		return false
	})
}
