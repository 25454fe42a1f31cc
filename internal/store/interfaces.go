package store

import (
	"context"

	"github.com/MKhiriev/memory-circle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryRepository is the persistence contract for the entries collection.
// Records are keyed by their own ID; Put is an upsert and Delete of a
// missing id is a no-op.
type EntryRepository interface {
	GetAll(ctx context.Context) ([]models.Entry, error)
	Get(ctx context.Context, id string) (models.Entry, error)
	Put(ctx context.Context, entry models.Entry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EntryFilter) ([]models.Entry, error)
}

// PersonRepository is the persistence contract for the people collection.
type PersonRepository interface {
	GetAll(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, id string) (models.Person, error)
	Put(ctx context.Context, person models.Person) error
	Delete(ctx context.Context, id string) error
}

// SlotRepository is the persistence contract for the single-value slots
// (settings, profile, passcode, onboarded flag). Get reports absence through
// the boolean rather than an error.
type SlotRepository interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// BulkStore exposes the destructive whole-store operations used by backup
// restore and erase-all.
type BulkStore interface {
	ClearAll(ctx context.Context) error
	ReplaceAll(ctx context.Context, entries []models.Entry, people []models.Person) error
}

// EntryFilter narrows List results. Zero-valued fields are ignored.
// Time-window filtering happens in the service layer because entry dates are
// display text, not comparable columns.
type EntryFilter struct {
	// PersonID keeps only entries tagging the given person id.
	PersonID string
	// Mood keeps only entries with the exact mood label.
	Mood string
	// HighlightOnly keeps only highlight-flagged entries.
	HighlightOnly bool
}
