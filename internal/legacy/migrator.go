// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package legacy imports journal data left behind by the flat-file storage
// format that predates the SQLite store. Each collection lives in its own
// JSON file in the data directory; a file is removed only after every record
// in it has been imported, so a partially failed run can be retried safely.
package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

// Legacy flat-file names, one per collection.
const (
	memoriesFile = "mc_memories.json"
	peopleFile   = "mc_people.json"
)

// Migrator moves records out of the legacy flat files into the store.
type Migrator struct {
	dataDir string
	entries store.EntryRepository
	people  store.PersonRepository
	logger  *logger.Logger
}

// NewMigrator constructs a Migrator reading legacy files from dataDir and
// writing into the given repositories.
func NewMigrator(dataDir string, entries store.EntryRepository, people store.PersonRepository, log *logger.Logger) *Migrator {
	return &Migrator{
		dataDir: dataDir,
		entries: entries,
		people:  people,
		logger:  log,
	}
}

// Migrate attempts to import both legacy collections. The two attempts are
// independent: a parse or put failure in one collection does not block the
// other. Returns true when at least one collection was migrated. Running
// again with no legacy files left is a no-op returning false.
func (m *Migrator) Migrate(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	migrated := false
	var errs []error

	entriesDone, err := migrateCollection(ctx, filepath.Join(m.dataDir, memoriesFile),
		func(ctx context.Context, entry models.Entry) error {
			return m.entries.Put(ctx, entry)
		})
	if err != nil {
		log.Err(err).
			Str("func", "Migrator.Migrate").
			Str("file", memoriesFile).
			Msg("failed to migrate legacy entries")
		errs = append(errs, fmt.Errorf("entries: %w", err))
	}
	migrated = migrated || entriesDone

	peopleDone, err := migrateCollection(ctx, filepath.Join(m.dataDir, peopleFile),
		func(ctx context.Context, person models.Person) error {
			return m.people.Put(ctx, person)
		})
	if err != nil {
		log.Err(err).
			Str("func", "Migrator.Migrate").
			Str("file", peopleFile).
			Msg("failed to migrate legacy people")
		errs = append(errs, fmt.Errorf("people: %w", err))
	}
	migrated = migrated || peopleDone

	if migrated {
		log.Info().
			Str("func", "Migrator.Migrate").
			Bool("entries_migrated", entriesDone).
			Bool("people_migrated", peopleDone).
			Msg("legacy migration finished")
	}

	return migrated, errors.Join(errs...)
}

// migrateCollection imports one legacy file. The file is removed only when
// every record in it was stored, so a later retry sees the remaining data.
func migrateCollection[T any](ctx context.Context, path string, put func(context.Context, T) error) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read legacy file: %w", err)
	}

	var records []T
	if err = json.Unmarshal(raw, &records); err != nil {
		return false, fmt.Errorf("parse legacy file: %w", err)
	}

	for idx, record := range records {
		if err = put(ctx, record); err != nil {
			return false, fmt.Errorf("store legacy record %d: %w", idx, err)
		}
	}

	if err = os.Remove(path); err != nil {
		return false, fmt.Errorf("remove legacy file: %w", err)
	}

	return true, nil
}
