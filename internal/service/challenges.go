// ABOUTME: Challenge evaluation and crediting.
// ABOUTME: Each challenge pays its XP at most once per timeframe key.
package service

import (
	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/harperreed/fittracker/internal/storage"
)

// Challenges reports every challenge's standing in its current period.
func (t *Tracker) Challenges() []stats.ChallengeStatus {
	now := t.clock.Now()
	history := t.workouts.List()
	s := t.achievements.Stats()

	out := make([]stats.ChallengeStatus, 0)
	for _, def := range models.ChallengeDefinitions() {
		st := stats.ChallengeProgress(def, history, s, now)
		st.Completed = t.challenges.IsCompleted(st.Key)
		out = append(out, st)
	}
	return out
}

// CheckChallenges credits every challenge that reached its target this
// period and has not been credited for it yet. It returns the newly credited ones.
func (t *Tracker) CheckChallenges() []stats.ChallengeStatus {
	var credited []stats.ChallengeStatus
	for _, st := range t.Challenges() {
		if st.Completed || !st.Done() {
			continue
		}
		if !t.challenges.MarkCompleted(st.Key) {
			continue
		}
		st.Completed = true
		credited = append(credited, st)
		t.achievements.Emit(storage.Event{
			Kind:        storage.EventChallengeCompleted,
			Title:       st.Title,
			Description: st.Description,
			XP:          st.XPReward,
		})
		t.achievements.AwardXP(st.XPReward)
	}
	return credited
}
