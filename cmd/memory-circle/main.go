// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/memory-circle/internal/backup"
	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/legacy"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/service"
	"github.com/MKhiriev/memory-circle/internal/settings"
	"github.com/MKhiriev/memory-circle/internal/store"
)

// app bundles everything the commands need after bootstrap.
type app struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
	services *service.Services
	settings *settings.Service
	codec    *backup.Codec
}

var (
	dataDirFlag string
	dbPathFlag  string
	logFileFlag string
	yesFlag     bool

	a app
)

var rootCmd = &cobra.Command{
	Use:   "memory-circle",
	Short: "A private, local-first memory journal",
	Long: `memory-circle keeps a personal journal of memories, the people in them,
and what the two together say about you. Everything stays in a local
SQLite database; nothing ever leaves your machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a.storages != nil {
			a.storages.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the memory-circle version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), a.cfg.App.Version)
	},
}

// bootstrap builds the config from flags and environment, opens the store
// (running migrations), drains any legacy flat files, and wires the
// services. Legacy migration failures are logged, never fatal.
func bootstrap(cmd *cobra.Command) error {
	cfg, err := config.GetConfig(&config.StructuredConfig{
		App: config.App{LogFile: logFileFlag},
		Storage: config.Storage{
			DataDir: dataDirFlag,
			DB:      config.DB{DSN: dbPathFlag},
		},
	})
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewFileLogger("cli", cfg.App.LogFile)

	storages, err := store.NewStorages(cmd.Context(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error opening storage: %w", err)
	}

	ctx := log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	migrator := legacy.NewMigrator(cfg.Storage.DataDir, storages.Entries, storages.People, log)
	if migrated, migErr := migrator.Migrate(ctx); migErr != nil {
		log.Err(migErr).Msg("legacy migration finished with errors")
	} else if migrated {
		fmt.Fprintln(cmd.ErrOrStderr(), "Imported journal data from a previous version.")
	}

	a = app{
		cfg:      cfg,
		log:      log,
		storages: storages,
		services: service.NewServices(storages, log),
		settings: settings.NewService(storages.Slots, log),
		codec:    backup.NewCodec(storages, log),
	}

	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding the journal database and legacy files")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the SQLite database file")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append logs to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&yesFlag, "yes", false, "answer yes to confirmation prompts")

	rootCmd.AddCommand(
		versionCmd,
		entriesCmd,
		peopleCmd,
		insightsCmd,
		profileCmd,
		backupCmd,
		eraseAllCmd,
		migrateLegacyCmd,
		promptCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
