// ABOUTME: Install Claude Code skill for fittracker
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the fittracker skill for Claude Code.

This copies the skill definition to ~/.claude/skills/fittracker/
so Claude Code can log workouts and meals contextually.`,
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home)
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

// skillPath is where the skill is installed under home.
func skillPath(home string) string {
	return filepath.Join(home, ".claude", "skills", "fittracker", "SKILL.md")
}

func installSkill(home string) error {
	path := skillPath(home)

	fmt.Println("┌─────────────────────────────────────────────────────────────┐")
	fmt.Println("│             Fittracker Skill for Claude Code                │")
	fmt.Println("└─────────────────────────────────────────────────────────────┘")
	fmt.Println()
	fmt.Println("This will install the fittracker skill, enabling Claude Code to:")
	fmt.Println()
	fmt.Println("  • Log workouts and meals")
	fmt.Println("  • Check calories, macros, and streaks")
	fmt.Println("  • Report level, achievements, and challenges")
	fmt.Println()
	fmt.Println("Destination:")
	fmt.Printf("  %s\n", path)
	fmt.Println()

	if _, err := os.Stat(path); err == nil {
		fmt.Println("Note: A skill file already exists and will be overwritten.")
		fmt.Println()
	}

	if !skillSkipConfirm && !confirm(os.Stdin, "Install the fittracker skill? [y/N] ", "y") {
		fmt.Println("Installation canceled.")
		return nil
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	color.Green("✓ Installed fittracker skill")
	fmt.Println()
	fmt.Println("Try asking Claude: \"Log 3 sets of push-ups\" or \"How many calories today?\"")
	return nil
}
