// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import the whole journal",
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the journal as a JSON document",
	Long: `Export writes every entry, person, your profile and settings into one
self-describing JSON document. Without a file argument the document goes
to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := a.codec.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		}

		if err = os.WriteFile(args[0], payload, 0o600); err != nil {
			return fmt.Errorf("failed to write backup file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Exported journal to", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Restore the journal from a backup document",
	Long: `Import replaces every entry and person with the contents of the backup
document, and restores the profile and settings it carries. This cannot
be undone; the command asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup file: %w", err)
		}

		if !yesFlag && !confirm(cmd, "This replaces your whole journal. Continue? [y/N] ") {
			fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
			return nil
		}

		if err = a.codec.Import(cmd.Context(), raw); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Journal restored from", args[0])
		return nil
	},
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	backupCmd.AddCommand(exportCmd, importCmd)
}
