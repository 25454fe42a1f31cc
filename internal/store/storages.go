// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/models"
)

// Storages bundles every repository over the shared database connection.
// It also implements [BulkStore] for the whole-store operations used by
// backup restore and erase-all.
type Storages struct {
	Entries EntryRepository
	People  PersonRepository
	Slots   SlotRepository

	db     *DB
	logger *logger.Logger
}

// NewStorages opens the SQLite database described by cfg, runs pending
// migrations and wires every repository over the shared connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to run migrations")
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Storages{
		Entries: NewEntryRepository(db, log),
		People:  NewPersonRepository(db, log),
		Slots:   NewSlotRepository(db, log),
		db:      db,
		logger:  log,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

// ClearAll removes every record from every collection, slots included.
// All deletions happen in one transaction so a failure leaves the store
// untouched.
func (s *Storages) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "Storages.ClearAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, query := range []string{deleteAllEntries, deleteAllPeople, deleteAllSlots} {
		if _, execErr := tx.ExecContext(ctx, query); execErr != nil {
			log.Err(execErr).
				Str("func", "Storages.ClearAll").
				Msg("failed to clear collection")
			return storageFailure(execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "Storages.ClearAll").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "Storages.ClearAll").
		Msg("cleared all collections")

	return nil
}

// ReplaceAll swaps the entries and people collections for the given records
// in one transaction. Slots are left untouched; settings and profile slots
// are restored separately by the backup layer. A failure anywhere rolls the
// whole swap back.
func (s *Storages) ReplaceAll(ctx context.Context, entries []models.Entry, people []models.Person) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "Storages.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, query := range []string{deleteAllEntries, deleteAllPeople} {
		if _, execErr := tx.ExecContext(ctx, query); execErr != nil {
			log.Err(execErr).
				Str("func", "Storages.ReplaceAll").
				Msg("failed to clear collection")
			return storageFailure(execErr)
		}
	}

	entryStmt, err := tx.PrepareContext(ctx, upsertEntry)
	if err != nil {
		log.Err(err).
			Str("func", "Storages.ReplaceAll").
			Msg("failed to prepare entry statement")
		return storageFailure(err)
	}
	defer entryStmt.Close()

	for _, entry := range entries {
		peopleIDs, encErr := encodePeopleIDs(entry.PeopleIDs)
		if encErr != nil {
			log.Err(encErr).
				Str("func", "Storages.ReplaceAll").
				Str("entry_id", entry.ID).
				Msg("failed to encode people ids")
			return malformedRecord(encErr)
		}

		var lat, lng sql.NullFloat64
		if entry.Coordinates != nil {
			lat = sql.NullFloat64{Float64: entry.Coordinates.Lat, Valid: true}
			lng = sql.NullFloat64{Float64: entry.Coordinates.Lng, Valid: true}
		}

		if _, execErr := entryStmt.ExecContext(ctx,
			entry.ID,
			entry.Title,
			entry.Date,
			entry.Time,
			entry.Location,
			entry.Mood,
			entry.Content,
			entry.ImageURL,
			entry.AudioURL,
			entry.AudioDuration,
			peopleIDs,
			entry.IsHighlight,
			lat,
			lng,
			entry.IsCapsule,
			entry.UnlockDate,
		); execErr != nil {
			log.Err(execErr).
				Str("func", "Storages.ReplaceAll").
				Str("entry_id", entry.ID).
				Msg("failed to insert entry")
			return storageFailure(execErr)
		}
	}

	personStmt, err := tx.PrepareContext(ctx, upsertPerson)
	if err != nil {
		log.Err(err).
			Str("func", "Storages.ReplaceAll").
			Msg("failed to prepare person statement")
		return storageFailure(err)
	}
	defer personStmt.Close()

	for _, person := range people {
		if _, execErr := personStmt.ExecContext(ctx,
			person.ID,
			person.Name,
			person.Role,
			person.MemoriesCount,
			person.ImageURL,
			person.Bio,
		); execErr != nil {
			log.Err(execErr).
				Str("func", "Storages.ReplaceAll").
				Str("person_id", person.ID).
				Msg("failed to insert person")
			return storageFailure(execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "Storages.ReplaceAll").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "Storages.ReplaceAll").
		Int("entries_count", len(entries)).
		Int("people_count", len(people)).
		Msg("replaced all collections")

	return nil
}
