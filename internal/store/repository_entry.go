// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/models"
)

// entryRepository is the SQLite-backed implementation of [EntryRepository].
//
// Tagged people ids are stored as a JSON array in the people_ids column and
// the optional coordinates pair as two nullable REAL columns. A row whose
// people_ids column does not decode fails the retrieval with
// [ErrMalformedRecord], which callers can tell apart from
// [ErrStorageUnavailable] with errors.Is.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll retrieves every stored entry in unspecified order.
//
// Returns an empty slice when the journal is empty.
func (r *entryRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllEntries)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetAll").
			Msg("failed to execute query for getting all entries")
		return nil, storageFailure(err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 50)

	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.GetAll").
				Msg("failed to scan entry row")
			return nil, scanErr
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, storageFailure(rowsErr)
	}

	return entries, nil
}

// Get retrieves a single entry by id.
//
// Returns [ErrEntryNotFound] when no entry has the given id.
func (r *entryRepository) Get(ctx context.Context, id string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, selectEntryByID, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "entryRepository.Get").
			Str("entry_id", id).
			Msg("failed to scan entry row")
		return models.Entry{}, err
	}

	return entry, nil
}

// Put saves the entry, inserting it when the id is new and overwriting the
// stored record otherwise.
func (r *entryRepository) Put(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	peopleIDs, err := encodePeopleIDs(entry.PeopleIDs)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.Put").
			Str("entry_id", entry.ID).
			Msg("failed to encode people ids")
		return malformedRecord(err)
	}

	var lat, lng sql.NullFloat64
	if entry.Coordinates != nil {
		lat = sql.NullFloat64{Float64: entry.Coordinates.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: entry.Coordinates.Lng, Valid: true}
	}

	_, execErr := r.DB.ExecContext(ctx, upsertEntry,
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
	)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "entryRepository.Put").
			Str("entry_id", entry.ID).
			Msg("failed to upsert entry")
		return storageFailure(execErr)
	}

	log.Debug().
		Str("func", "entryRepository.Put").
		Str("entry_id", entry.ID).
		Msg("entry saved")

	return nil
}

// Delete removes the entry with the given id. Deleting an id that does not
// exist is a no-op.
func (r *entryRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteEntryByID, id); err != nil {
		log.Err(err).
			Str("func", "entryRepository.Delete").
			Str("entry_id", id).
			Msg("failed to delete entry")
		return storageFailure(err)
	}

	return nil
}

// List retrieves entries matching the filter. Mood and highlight conditions
// are pushed into the SQL query; person-tag membership is checked after
// scanning because people_ids is an opaque JSON column.
func (r *entryRepository) List(ctx context.Context, filter EntryFilter) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.List").
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "entryRepository.List").
			Msg("failed to execute list query")
		return nil, storageFailure(queryErr)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 50)

	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.List").
				Msg("failed to scan entry row")
			return nil, scanErr
		}

		if filter.PersonID != "" && !entry.HasPerson(filter.PersonID) {
			continue
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.List").
			Msg("error occurred during rows iteration")
		return nil, storageFailure(rowsErr)
	}

	return entries, nil
}

func buildListEntriesQuery(filter EntryFilter) (string, []interface{}, error) {
	builder := sq.Select(
		"id", "title", "date", "time", "location", "mood", "content", "image_url",
		"audio_url", "audio_duration", "people_ids", "is_highlight", "lat", "lng",
		"is_capsule", "unlock_date",
	).From("entries")

	if filter.Mood != "" {
		builder = builder.Where(sq.Eq{"mood": filter.Mood})
	}
	if filter.HighlightOnly {
		builder = builder.Where(sq.Eq{"is_highlight": true})
	}

	return builder.ToSql()
}

// rowScanner is satisfied by both [*sql.Row] and [*sql.Rows].
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var entry models.Entry
	var peopleIDs string
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Date,
		&entry.Time,
		&entry.Location,
		&entry.Mood,
		&entry.Content,
		&entry.ImageURL,
		&entry.AudioURL,
		&entry.AudioDuration,
		&peopleIDs,
		&entry.IsHighlight,
		&lat,
		&lng,
		&entry.IsCapsule,
		&entry.UnlockDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, err
		}
		return models.Entry{}, storageFailure(err)
	}

	entry.PeopleIDs, err = decodePeopleIDs(peopleIDs)
	if err != nil {
		return models.Entry{}, malformedRecord(err)
	}

	if lat.Valid && lng.Valid {
		entry.Coordinates = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	return entry, nil
}

func encodePeopleIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode people ids: %w", err)
	}
	return string(raw), nil
}

func decodePeopleIDs(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode people ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
