// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, now, repair, reset, and wipe operations.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/config"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync fitness data across devices",
	Long: `Sync fitness data across devices using Charm Cloud.

Sync needs the charm backend. Set it in ~/.config/fittracker/config.json:

  {"backend": "charm"}

Your data is E2E encrypted with your SSH key before upload.

GETTING STARTED:

  1. Link your device:   fittracker sync link
  2. Check status:       fittracker sync status
  3. Move local data:    fittracker --backend sqlite store migrate --to charm

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  now         Sync immediately
  repair      Repair database corruption
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete cloud and local data (destructive)

Data syncs automatically after each write.`,
}

// charmBackend returns the open Charm backend or explains how to enable it.
func charmBackend() (*kv.CharmBackend, error) {
	cb, ok := appCtx.Backend.(*kv.CharmBackend)
	if !ok {
		return nil, fmt.Errorf("sync needs the charm backend (current: %s); set \"backend\": \"charm\" in %s or pass --backend charm",
			cfg.GetBackend(), config.GetConfigPath())
	}
	return cb, nil
}

// batchWrites runs fn with per-write sync turned off on the charm backend and
// syncs once afterwards. Other backends just run fn.
func batchWrites(fn func() error) error {
	cb, ok := appCtx.Backend.(*kv.CharmBackend)
	if !ok {
		return fn()
	}
	cb.SetAutoSync(false)
	err := fn()
	cb.SetAutoSync(true)
	if syncErr := cb.Sync(); syncErr != nil && err == nil {
		color.Yellow("⚠ Sync after import failed: %v", syncErr)
	}
	return err
}

// runCharm hands the terminal to the charm CLI for account operations.
func runCharm(args ...string) error {
	c := exec.Command("charm", args...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("charm CLI not found; install it with: go install github.com/charmbracelet/charm@latest")
		}
		return fmt.Errorf("charm %s: %w", args[0], err)
	}
	return nil
}

var syncLinkCmd = &cobra.Command{
	Use:         "link",
	Short:       "Link this device to Charm",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("link"); err != nil {
			return err
		}
		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Switch to it with \"backend\": \"charm\", then run 'fittracker sync now'.")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:         "unlink",
	Short:       "Disconnect from Charm",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm("unlink"); err != nil {
			return err
		}
		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Workouts, meals, and progress stay on this device.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cb, err := charmBackend()
		if err != nil {
			return err
		}

		id, err := cb.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'fittracker sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println("Server:", kv.CharmHost)
		fmt.Println()

		if cb.IsReadOnly() {
			color.Yellow("⚠ Read-only: another process holds the database lock")
		} else {
			color.Green("✓ Connected to Charm")
		}
		s := appCtx.Tracker.AppStatistics()
		fmt.Printf("  Workouts:     %d\n", s.TotalWorkouts)
		fmt.Printf("  Meals:        %d\n", s.TotalMeals)
		fmt.Printf("  Achievements: %d\n", s.TotalAchievements)
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		cb, err := charmBackend()
		if err != nil {
			return err
		}
		if cb.IsReadOnly() {
			return fmt.Errorf("database is locked by another fittracker process; try again when it exits")
		}
		if err := cb.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Synced %d keys (%d bytes)", len(appCtx.Store.Keys()), appCtx.Store.SizeInBytes())
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:         "wipe",
	Short:       "Delete all cloud and local data",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will PERMANENTLY DELETE all cloud backups and local fitness data.")
		if !confirm(os.Stdin, "Type 'wipe' to confirm: ", "wipe") {
			fmt.Println("Canceled.")
			return nil
		}

		result, err := charmkv.Wipe(kv.CharmDBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Data wiped successfully")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair database corruption",
	Long: `Repair database corruption by checkpointing WAL, removing SHM files, checking integrity, and vacuuming.

Use this when you encounter database lock errors or corruption.
Run with --force to attempt recovery even if integrity checks fail.`,
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		fmt.Println("Repairing fittracker database...")
		result, err := charmkv.Repair(kv.CharmDBName, force)

		steps := []struct {
			done bool
			name string
		}{
			{result.WalCheckpointed, "WAL checkpointed"},
			{result.ShmRemoved, "SHM file removed"},
			{result.IntegrityOK, "integrity check passed"},
			{result.Vacuumed, "database vacuumed"},
		}
		for _, st := range steps {
			if st.done {
				color.Green("  ✓ %s", st.name)
			}
		}
		if !result.IntegrityOK {
			color.Red("  ✗ integrity check failed")
		}

		if err != nil {
			if !force {
				color.Yellow("\nRun with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}

		color.Green("\n✓ Repair complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Reset local data and restore from cloud",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will DELETE all local fitness data and restore from cloud.")
		if !confirm(os.Stdin, "Type 'reset' to confirm: ", "reset") {
			fmt.Println("Canceled.")
			return nil
		}

		if err := charmkv.Reset(kv.CharmDBName); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	syncRepairCmd.Flags().Bool("force", false, "Attempt recovery even if integrity checks fail")

	rootCmd.AddCommand(syncCmd)
}
