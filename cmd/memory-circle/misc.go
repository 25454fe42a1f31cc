package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/memory-circle/internal/legacy"
	"github.com/MKhiriev/memory-circle/internal/prompts"
)

// migrateLegacyCmd re-runs the legacy flat-file import on demand. The same
// import also runs automatically at startup; this command exists so a user
// can retry a partially failed one and see the outcome.
var migrateLegacyCmd = &cobra.Command{
	Use:   "migrate-legacy",
	Short: "Import journal data left by the old flat-file format",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrator := legacy.NewMigrator(a.cfg.Storage.DataDir, a.storages.Entries, a.storages.People, a.log)

		migrated, err := migrator.Migrate(cmd.Context())
		if err != nil {
			return fmt.Errorf("legacy migration finished with errors: %w", err)
		}

		if migrated {
			fmt.Fprintln(cmd.OutOrStdout(), "Legacy journal data imported.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No legacy data found.")
		}
		return nil
	},
}

var eraseAllCmd = &cobra.Command{
	Use:   "erase-all",
	Short: "Delete every entry, person, profile and setting",
	Long: `Erase-all wipes the whole store: both collections plus the single-value
slots holding your profile, passcode, settings and onboarding flag. This
cannot be undone; export a backup first. The command asks for
confirmation unless --yes is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yesFlag && !confirm(cmd, "This permanently deletes everything. Continue? [y/N] ") {
			fmt.Fprintln(cmd.OutOrStdout(), "Erase cancelled.")
			return nil
		}

		if err := a.storages.ClearAll(cmd.Context()); err != nil {
			return fmt.Errorf("erase failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All data erased.")
		return nil
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print a reflection prompt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), quoteStyle.Render(prompts.Random()))
	},
}
