// ABOUTME: CLI commands for exporting and importing complete backups.
// ABOUTME: Supports JSON, YAML, and Markdown export; JSON and YAML import.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export your profile, goals, workouts, meals, achievements, and stats.

FORMATS:

  json       Complete backup (suitable for backup/restore)
  yaml       Complete backup in YAML (human-readable)
  markdown   Report with tables (for sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include workouts and meals since this date (markdown only)

EXAMPLES:

  fittracker export json -o backup.json
  fittracker export yaml
  fittracker export markdown --since 2024-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = appCtx.Backup.ExportJSON()
		case "yaml":
			data, err = appCtx.Backup.ExportYAML()
		case "markdown", "md":
			var since *time.Time
			if exportSince != "" {
				t, err := parseTime(exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			data = []byte(appCtx.Backup.ExportMarkdown(since))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON or YAML backup",
	Long: `Import a backup made with 'fittracker export json' or 'export yaml'.

Workouts, meals, and achievements are added after your existing records.
Records whose ID is already present are skipped, so importing the same
file twice is harmless. Profile, goals, and stats are merged field by field.
Imported achievements do not award XP again.

EXAMPLES:

  fittracker import backup.json
  fittracker import backup.yml
  fittracker import dump.txt --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		format := importFormat
		if format == "" {
			format = "json"
			if ext := strings.ToLower(filepath.Ext(filename)); ext == ".yaml" || ext == ".yml" {
				format = "yaml"
			}
		}

		var summary *storage.ImportSummary
		err = batchWrites(func() error {
			var ierr error
			switch format {
			case "json":
				summary, ierr = appCtx.Backup.ImportJSON(data)
			case "yaml":
				summary, ierr = appCtx.Backup.ImportYAML(data)
			default:
				return fmt.Errorf("unknown format: %s (use json or yaml)", format)
			}
			return ierr
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		printImportSummary(summary)
		return nil
	},
}

func printImportSummary(s *storage.ImportSummary) {
	fmt.Printf("  Workouts:     %d added, %d skipped\n", s.Workouts, s.WorkoutsSkipped)
	fmt.Printf("  Meals:        %d added, %d skipped\n", s.Meals, s.MealsSkipped)
	fmt.Printf("  Achievements: %d added, %d skipped\n", s.Achievements, s.AchievementsSkipped)
	var merged []string
	if s.Profile {
		merged = append(merged, "profile")
	}
	if s.Goals {
		merged = append(merged, "goals")
	}
	if s.Stats {
		merged = append(merged, "stats")
	}
	if len(merged) > 0 {
		fmt.Printf("  Merged:       %s\n", strings.Join(merged, ", "))
	}
	for _, f := range s.Failed {
		color.Yellow("  ⚠ Could not import %s", f)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "json or yaml (default: from file extension)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
