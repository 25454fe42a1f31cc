// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup serializes the whole journal into a single self-describing
// JSON document and restores from one. Import is destructive for the entries
// and people collections; callers must confirm with the user first.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

// ErrInvalidBackup is returned when an import payload does not parse as a
// backup document. Nothing is applied in that case.
var ErrInvalidBackup = errors.New("invalid backup document")

// Codec exports and imports backup documents against the store.
type Codec struct {
	entries store.EntryRepository
	people  store.PersonRepository
	slots   store.SlotRepository
	bulk    store.BulkStore
	logger  *logger.Logger

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// NewCodec constructs a Codec over the given repositories.
func NewCodec(s *store.Storages, log *logger.Logger) *Codec {
	return &Codec{
		entries: s.Entries,
		people:  s.People,
		slots:   s.Slots,
		bulk:    s,
		logger:  log,
		now:     time.Now,
	}
}

// Export collects every collection and slot into one document and returns it
// as indented JSON. Absent profile and settings slots are omitted from the
// document rather than emitted as nulls with defaults.
func (c *Codec) Export(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	entries, err := c.entries.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}

	people, err := c.people.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export people: %w", err)
	}

	doc := models.BackupDocument{
		Entries:   entries,
		People:    people,
		Version:   models.BackupVersion,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	}

	if profile, ok, slotErr := c.slots.Get(ctx, store.SlotProfile); slotErr != nil {
		return nil, fmt.Errorf("export profile: %w", slotErr)
	} else if ok {
		var p models.Profile
		if decErr := json.Unmarshal([]byte(profile), &p); decErr != nil {
			log.Err(decErr).
				Str("func", "Codec.Export").
				Msg("profile slot is malformed, omitting from backup")
		} else {
			doc.Profile = &p
		}
	}

	if settings, ok, slotErr := c.slots.Get(ctx, store.SlotSettings); slotErr != nil {
		return nil, fmt.Errorf("export settings: %w", slotErr)
	} else if ok {
		var s models.Settings
		if decErr := json.Unmarshal([]byte(settings), &s); decErr != nil {
			log.Err(decErr).
				Str("func", "Codec.Export").
				Msg("settings slot is malformed, omitting from backup")
		} else {
			doc.Settings = &s
		}
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup document: %w", err)
	}

	log.Info().
		Str("func", "Codec.Export").
		Int("entries_count", len(entries)).
		Int("people_count", len(people)).
		Msg("exported backup document")

	return payload, nil
}

// Import parses raw as a backup document and restores it. A payload that does
// not parse fails with [ErrInvalidBackup] before anything is touched. Absent
// entries or people fields are treated as empty collections. Settings and
// profile slots are restored independently of the collection swap: a slot
// write failure is logged and reported but does not undo the swap.
func (c *Codec) Import(ctx context.Context, raw []byte) error {
	log := logger.FromContext(ctx)

	var doc models.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	if doc.Entries == nil {
		doc.Entries = []models.Entry{}
	}
	if doc.People == nil {
		doc.People = []models.Person{}
	}

	if err := c.bulk.ReplaceAll(ctx, doc.Entries, doc.People); err != nil {
		return fmt.Errorf("restore collections: %w", err)
	}

	var errs []error

	if doc.Settings != nil {
		if err := c.writeSlot(ctx, store.SlotSettings, doc.Settings); err != nil {
			log.Err(err).
				Str("func", "Codec.Import").
				Msg("failed to restore settings slot")
			errs = append(errs, fmt.Errorf("restore settings: %w", err))
		}
	}

	if doc.Profile != nil {
		if err := c.writeSlot(ctx, store.SlotProfile, doc.Profile); err != nil {
			log.Err(err).
				Str("func", "Codec.Import").
				Msg("failed to restore profile slot")
			errs = append(errs, fmt.Errorf("restore profile: %w", err))
		}
	}

	log.Info().
		Str("func", "Codec.Import").
		Int("entries_count", len(doc.Entries)).
		Int("people_count", len(doc.People)).
		Str("backup_version", doc.Version).
		Msg("imported backup document")

	return errors.Join(errs...)
}

func (c *Codec) writeSlot(ctx context.Context, name string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.slots.Set(ctx, name, string(raw))
}
