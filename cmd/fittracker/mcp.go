// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittracker/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	// Notifications on stdout would corrupt the protocol stream.
	Annotations: map[string]string{quietAnnotation: "true"},
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fittracker": {
        "command": "fittracker",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  search_foods, log_food, log_meal, list_meals, delete_meal
  add_exercise, current_workout, save_workout, list_workouts, delete_workout
  get_stats, award_xp, check_achievements, list_achievements, list_challenges
  update_profile

AVAILABLE RESOURCES:

  fittracker://today          Today's workouts and meals with totals
  fittracker://summary        Dashboard snapshot
  fittracker://achievements   Unlocked and locked achievements`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appCtx)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
