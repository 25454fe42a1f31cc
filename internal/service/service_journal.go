// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/memory-circle/internal/dates"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/internal/utils"
	"github.com/MKhiriev/memory-circle/models"
)

// journalService is the concrete implementation of JournalService backed by
// the entry repository.
type journalService struct {
	entries store.EntryRepository
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger

	// now is swappable so capsule-lock decisions are testable.
	now func() time.Time
}

// NewJournalService constructs a JournalService over the given repository.
func NewJournalService(entries store.EntryRepository, logger *logger.Logger) JournalService {
	return &journalService{
		entries: entries,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
		now:     time.Now,
	}
}

// SaveEntry upserts the entry. An entry without an id gets a fresh one;
// saving an existing id overwrites the stored record wholesale.
func (j *journalService) SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if entry.ID == "" {
		entry.ID = j.uuid.Generate()
	}
	if entry.PeopleIDs == nil {
		entry.PeopleIDs = []string{}
	}

	if err := j.entries.Put(ctx, entry); err != nil {
		log.Err(err).
			Str("func", "journalService.SaveEntry").
			Str("entry_id", entry.ID).
			Msg("failed to save entry")
		return models.Entry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	return entry, nil
}

// GetEntry retrieves one entry. The capsule lock is not enforced here;
// readers decide whether to withhold content via [CapsuleLocked].
func (j *journalService) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	if id == "" {
		return models.Entry{}, ErrInvalidDataProvided
	}
	return j.entries.Get(ctx, id)
}

// ListEntries returns filtered entries ordered newest first. Entries whose
// date text does not parse sort after every dated entry, keeping their
// relative input order.
func (j *journalService) ListEntries(ctx context.Context, filter ListFilter) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	entries, err := j.entries.List(ctx, store.EntryFilter{
		PersonID:      filter.PersonID,
		Mood:          filter.Mood,
		HighlightOnly: filter.HighlightOnly,
	})
	if err != nil {
		log.Err(err).
			Str("func", "journalService.ListEntries").
			Msg("failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	sort.SliceStable(entries, func(i, k int) bool {
		ti, iOK := dates.Parse(entries[i].Date)
		tk, kOK := dates.Parse(entries[k].Date)
		if iOK != kOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.After(tk)
	})

	return entries, nil
}

// DeleteEntry removes an entry by id. Deleting a missing id is a no-op.
func (j *journalService) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}
	return j.entries.Delete(ctx, id)
}

// CapsuleLocked reports whether the entry is a time capsule whose unlock
// date is still in the future. An unlock date that does not parse is
// treated as already unlocked. The decision uses calendar days: the capsule
// opens at the start of its unlock day.
func CapsuleLocked(entry models.Entry, now time.Time) bool {
	if !entry.IsCapsule || entry.UnlockDate == "" {
		return false
	}
	unlock, ok := dates.Parse(entry.UnlockDate)
	if !ok {
		return false
	}
	return now.Before(unlock)
}
