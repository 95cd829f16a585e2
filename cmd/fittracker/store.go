// ABOUTME: CLI commands for inspecting and maintaining the raw key-value store.
// ABOUTME: Keys, size, dump/restore of every namespaced key, clear, and backend migration.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittracker/internal/config"
	"github.com/harperreed/fittracker/internal/kv"
	"github.com/spf13/cobra"
)

var (
	storeOutput  string
	storeYes     bool
	migrateTo    string
	migrateForce bool
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Inspect and maintain the key-value store",
	Long: `Low-level access to the key-value store behind fittracker.

Every key is stored under the fittracker_ namespace. These commands work on
raw keys, including scratch values like the workout timer that are not part
of 'fittracker export'.

COMMANDS:

  keys      List stored keys
  size      Show storage used
  dump      Write every key and value as JSON
  restore   Write keys from a dump back into the store
  clear     Delete every fittracker key
  migrate   Copy every key to another backend`,
}

var storeKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := appCtx.Store.Keys()
		if len(keys) == 0 {
			fmt.Println("Store is empty.")
			return nil
		}
		for _, k := range keys {
			fmt.Printf("%s %s\n", padRight(k, 24), faint.Sprintf("%d bytes", len(appCtx.Store.GetRaw(k))))
		}
		return nil
	},
}

var storeSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Show storage used",
	RunE: func(cmd *cobra.Command, args []string) error {
		size := appCtx.Store.SizeInBytes()
		fmt.Printf("%d keys, %d bytes (%.1f KB)\n", len(appCtx.Store.Keys()), size, float64(size)/1024)
		if sb, ok := appCtx.Backend.(*kv.SQLiteBackend); ok {
			fmt.Printf("%s\n", faint.Sprint(sb.Path()))
		}
		return nil
	},
}

var storeDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write every key and value as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(appCtx.Store.ExportAll(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal dump: %w", err)
		}
		if storeOutput != "" {
			if err := os.WriteFile(storeOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Dumped %d keys to %s", len(appCtx.Store.Keys()), storeOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

var storeRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Write keys from a dump back into the store",
	Long: `Write every key from a 'fittracker store dump' file into the store.

Keys in the dump overwrite existing keys with the same name. Keys not in
the dump are left alone. Values that are not valid JSON are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		var dump map[string]json.RawMessage
		if err := json.Unmarshal(data, &dump); err != nil {
			return fmt.Errorf("parse dump: %w", err)
		}
		var ok bool
		if err := batchWrites(func() error {
			ok = appCtx.Store.ImportAll(dump)
			return nil
		}); err != nil {
			return err
		}
		if !ok {
			color.Yellow("⚠ Some keys could not be restored")
		}
		color.Green("✓ Restored from %s", args[0])
		return nil
	},
}

var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every fittracker key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !storeYes && !confirm(os.Stdin, "This will DELETE all fittracker data. Type 'clear' to confirm: ", "clear") {
			fmt.Println("Canceled.")
			return nil
		}
		if !appCtx.Store.Clear() {
			return fmt.Errorf("failed to clear store")
		}
		color.Yellow("✗ Store cleared")
		return nil
	},
}

var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy every key to another backend",
	Long: `Copy every fittracker key from the current backend to another one.

The destination uses the same data directory as the current config. After
migrating, set "backend" in ~/.config/fittracker/config.json to switch.

EXAMPLES:

  fittracker store migrate --to badger
  fittracker --backend charm store migrate --to sqlite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("--to is required")
		}
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		if migrateTo == "badger" && !migrateForce {
			if nonEmpty, _ := kv.IsDirNonEmpty(cfg.BadgerDir()); nonEmpty {
				return fmt.Errorf("%s is not empty (use --force to merge into it)", cfg.BadgerDir())
			}
		}

		dst, err := cfg.OpenNamedBackend(migrateTo)
		if err != nil {
			return fmt.Errorf("open %s backend: %w", migrateTo, err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := kv.Migrate(appCtx.Backend, dst, appCtx.Store.Prefix())
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d keys (%d bytes) to %s", summary.Keys, summary.Bytes, migrateTo)
		fmt.Printf("  Set \"backend\": %q in %s to use it.\n", migrateTo, config.GetConfigPath())
		return nil
	},
}

func init() {
	storeDumpCmd.Flags().StringVarP(&storeOutput, "output", "o", "", "output file (default: stdout)")
	storeClearCmd.Flags().BoolVarP(&storeYes, "yes", "y", false, "skip confirmation prompt")
	storeMigrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (sqlite, badger, charm)")
	storeMigrateCmd.Flags().BoolVar(&migrateForce, "force", false, "migrate into a non-empty destination")

	storeCmd.AddCommand(storeKeysCmd)
	storeCmd.AddCommand(storeSizeCmd)
	storeCmd.AddCommand(storeDumpCmd)
	storeCmd.AddCommand(storeRestoreCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	rootCmd.AddCommand(storeCmd)
}
