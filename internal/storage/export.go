// ABOUTME: Complete backup export and import for fittracker data.
// ABOUTME: Supports JSON, YAML, and Markdown export; JSON and YAML import.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fittracker/internal/clock"
	"github.com/harperreed/fittracker/internal/models"
	"gopkg.in/yaml.v3"
)

// BackupVersion is written into every complete backup.
const BackupVersion = "1.0.0"

// ErrInvalidBackup is returned when an import payload is not a JSON object
// with a version field.
var ErrInvalidBackup = errors.New("invalid backup")

// CompleteBackup is the named-domain backup shape.
type CompleteBackup struct {
	Version      string               `json:"version" yaml:"version"`
	ExportDate   time.Time            `json:"exportDate" yaml:"exportDate"`
	UserProfile  models.UserProfile   `json:"userProfile" yaml:"userProfile"`
	UserGoals    models.UserGoals     `json:"userGoals" yaml:"userGoals"`
	Workouts     []models.Workout     `json:"workouts" yaml:"workouts"`
	Meals        []models.Meal        `json:"meals" yaml:"meals"`
	Achievements []models.Achievement `json:"achievements" yaml:"achievements"`
	UserStats    models.UserStats     `json:"userStats" yaml:"userStats"`
}

// ImportSummary counts what an import changed.
type ImportSummary struct {
	Profile             bool     `json:"profile"`
	Goals               bool     `json:"goals"`
	Stats               bool     `json:"stats"`
	Workouts            int      `json:"workouts"`
	WorkoutsSkipped     int      `json:"workoutsSkipped"`
	Meals               int      `json:"meals"`
	MealsSkipped        int      `json:"mealsSkipped"`
	Achievements        int      `json:"achievements"`
	AchievementsSkipped int      `json:"achievementsSkipped"`
	Failed              []string `json:"failed,omitempty"`
}

// Backup exports and imports every domain repository at once.
type Backup struct {
	clock        clock.Clock
	user         *UserRepo
	workouts     *WorkoutRepo
	meals        *MealRepo
	achievements *AchievementRepo
}

// NewBackup wires a Backup to the repositories it covers.
func NewBackup(clk clock.Clock, user *UserRepo, workouts *WorkoutRepo, meals *MealRepo, achievements *AchievementRepo) *Backup {
	return &Backup{clock: clk, user: user, workouts: workouts, meals: meals, achievements: achievements}
}

// Export snapshots all domain data.
func (b *Backup) Export() CompleteBackup {
	return CompleteBackup{
		Version:      BackupVersion,
		ExportDate:   b.clock.Now(),
		UserProfile:  b.user.Profile(),
		UserGoals:    b.user.Goals(),
		Workouts:     b.workouts.List(),
		Meals:        b.meals.List(),
		Achievements: b.achievements.List(),
		UserStats:    b.achievements.Stats(),
	}
}

// ExportJSON exports all data as indented JSON.
func (b *Backup) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(b.Export(), "", "  ")
}

// ExportYAML exports all data as YAML.
func (b *Backup) ExportYAML() ([]byte, error) {
	return yaml.Marshal(b.Export())
}

// ExportMarkdown renders a human-readable report. When since is set, only
// workouts and meals created at or after it are listed.
//
//nolint:gocognit // linear report layout
func (b *Backup) ExportMarkdown(since *time.Time) string {
	data := b.Export()
	keep := func(t time.Time) bool { return since == nil || !t.Before(*since) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Fitness Export - %s\n\n", data.ExportDate.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportDate.Format(time.RFC3339)))

	p := data.UserProfile
	sb.WriteString("## Profile\n\n")
	sb.WriteString(fmt.Sprintf("- **Name:** %s\n", p.Name))
	sb.WriteString(fmt.Sprintf("- **Age:** %d\n", p.Age))
	sb.WriteString(fmt.Sprintf("- **Weight:** %.1f kg\n", p.Weight))
	sb.WriteString(fmt.Sprintf("- **Height:** %.0f cm\n", p.Height))
	sb.WriteString(fmt.Sprintf("- **Goal:** %s (%s activity)\n\n", p.Goal, p.ActivityLevel))

	s := data.UserStats
	sb.WriteString("## Stats\n\n")
	sb.WriteString(fmt.Sprintf("- **Level:** %d (%d XP)\n", s.Level, s.XP))
	sb.WriteString(fmt.Sprintf("- **Workouts:** %d\n", s.TotalWorkouts))
	sb.WriteString(fmt.Sprintf("- **Calories burned:** %d\n", s.TotalCaloriesBurned))
	sb.WriteString(fmt.Sprintf("- **Streak:** %d days (longest %d)\n\n", s.CurrentStreak, s.LongestStreak))

	var workouts []models.Workout
	for _, w := range data.Workouts {
		if keep(w.CreatedAt) {
			workouts = append(workouts, w)
		}
	}
	if len(workouts) > 0 {
		sb.WriteString("## Workouts\n\n")
		sb.WriteString("| Date | Exercises | Duration | Calories |\n")
		sb.WriteString("|------|-----------|----------|----------|\n")
		for _, w := range workouts {
			names := make([]string, 0, len(w.Exercises))
			for _, ex := range w.Exercises {
				names = append(names, ex.Name)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %d |\n",
				w.CreatedAt.Format("2006-01-02 15:04"),
				strings.Join(names, ", "), w.Duration/60, w.CaloriesBurned))
		}
		sb.WriteString("\n")
	}

	var meals []models.Meal
	for _, m := range data.Meals {
		if keep(m.CreatedAt) {
			meals = append(meals, m)
		}
	}
	if len(meals) > 0 {
		sb.WriteString("## Meals\n\n")
		sb.WriteString("| Date | Meal | Food | Calories | P/C/F (g) |\n")
		sb.WriteString("|------|------|------|----------|-----------|\n")
		for _, m := range meals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.0f | %.1f/%.1f/%.1f |\n",
				m.CreatedAt.Format("2006-01-02 15:04"), m.MealType, m.Name,
				m.Calories, m.Protein, m.Carbs, m.Fat))
		}
		sb.WriteString("\n")
	}

	if len(data.Achievements) > 0 {
		sb.WriteString("## Achievements\n\n")
		for _, a := range data.Achievements {
			sb.WriteString(fmt.Sprintf("- **%s** - %s (+%d XP, %s)\n",
				a.Title, a.Description, a.XPReward, a.UnlockedAt.Format("2006-01-02")))
		}
	}

	return sb.String()
}

// ImportJSON applies a complete backup. The payload must be a JSON object
// with a version field. Each domain field is optional and applied on its
// own; there is no rollback if a later field fails. Records keep their IDs
// and are appended after existing history, skipping IDs already present.
// Achievements are restored without awarding XP.
func (b *Backup) ImportJSON(data []byte) (*ImportSummary, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidBackup)
	}
	var version string
	if raw, ok := payload["version"]; !ok || json.Unmarshal(raw, &version) != nil || version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidBackup)
	}

	summary := &ImportSummary{}
	fail := func(field string) { summary.Failed = append(summary.Failed, field) }

	if raw, ok := payload["userProfile"]; ok {
		p := b.user.Profile()
		if mergeJSON(&p, raw) == nil && b.user.store.Set(KeyUserProfile, p) {
			summary.Profile = true
		} else {
			fail("userProfile")
		}
	}

	if raw, ok := payload["userGoals"]; ok {
		g := b.user.Goals()
		if mergeJSON(&g, raw) == nil && b.user.store.Set(KeyUserGoals, g) {
			summary.Goals = true
		} else {
			fail("userGoals")
		}
	}

	if raw, ok := payload["workouts"]; ok {
		var ws []models.Workout
		if err := json.Unmarshal(raw, &ws); err != nil {
			fail("workouts")
		} else {
			added, skipped, ok := b.workouts.importWorkouts(ws)
			summary.Workouts, summary.WorkoutsSkipped = added, skipped
			if !ok {
				fail("workouts")
			}
		}
	}

	if raw, ok := payload["meals"]; ok {
		var ms []models.Meal
		if err := json.Unmarshal(raw, &ms); err != nil {
			fail("meals")
		} else {
			added, skipped, ok := b.meals.importMeals(ms)
			summary.Meals, summary.MealsSkipped = added, skipped
			if !ok {
				fail("meals")
			}
		}
	}

	if raw, ok := payload["achievements"]; ok {
		var as []models.Achievement
		if err := json.Unmarshal(raw, &as); err != nil {
			fail("achievements")
		} else {
			added, skipped, ok := b.achievements.importAchievements(as)
			summary.Achievements, summary.AchievementsSkipped = added, skipped
			if !ok {
				fail("achievements")
			}
		}
	}

	if raw, ok := payload["userStats"]; ok {
		s := b.achievements.Stats()
		if mergeJSON(&s, raw) == nil {
			if s.XP < 0 {
				s.XP = 0
			}
			s.Level = models.LevelForXP(s.XP)
			summary.Stats = b.achievements.c.store.Set(KeyUserStats, s)
		}
		if !summary.Stats {
			fail("userStats")
		}
	}

	return summary, nil
}

// ImportYAML converts a YAML backup to JSON and imports it.
func (b *Backup) ImportYAML(data []byte) (*ImportSummary, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if _, ok := payload.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: payload is not a mapping", ErrInvalidBackup)
	}
	asJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return b.ImportJSON(asJSON)
}

// mergeJSON overlays the top-level fields present in raw onto dst.
func mergeJSON(dst any, raw json.RawMessage) error {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(raw, &patch); err != nil {
		return err
	}
	current, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(current, &merged); err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(out, dst)
}
