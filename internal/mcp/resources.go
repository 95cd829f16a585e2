// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fittracker://today, fittracker://summary, and fittracker://achievements.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/fittracker/internal/models"
	"github.com/harperreed/fittracker/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriToday        = "fittracker://today"
	uriSummary      = "fittracker://summary"
	uriAchievements = "fittracker://achievements"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriToday,
		Name:        "Today's Activity",
		Description: "Workouts and meals logged today with totals",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriSummary,
		Name:        "Fitness Dashboard",
		Description: "Profile, goals, level, fitness score, and challenge progress",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriAchievements,
		Name:        "Achievements",
		Description: "Unlocked achievements and the conditions for locked ones",
		MIMEType:    "application/json",
	}, s.handleAchievementsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.app.Clock.Now()
	workouts := s.app.Workouts.Today()
	meals := s.app.Meals.Today()

	result := map[string]any{
		"date":      now.Format("2006-01-02"),
		"workouts":  workouts,
		"meals":     meals,
		"activity":  stats.SummarizeWorkouts(workouts),
		"nutrition": stats.SummarizeNutrition(meals),
		"byMeal":    stats.ByMealType(meals),
	}
	return jsonResource(uriToday, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(uriSummary, s.app.Tracker.Dashboard())
}

func (s *Server) handleAchievementsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type locked struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		XPReward  int    `json:"xpReward"`
		Condition string `json:"condition"`
	}

	var pending []locked
	for _, def := range models.AchievementDefinitions() {
		if s.app.Achievements.Unlocked(def.ID) {
			continue
		}
		pending = append(pending, locked{
			ID:        def.ID,
			Title:     def.Title,
			XPReward:  def.XPReward,
			Condition: def.Condition.String(),
		})
	}

	result := map[string]any{
		"unlocked": s.app.Achievements.List(),
		"locked":   pending,
		"stats":    s.app.Achievements.Stats(),
	}
	return jsonResource(uriAchievements, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
