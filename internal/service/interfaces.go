package service

import (
	"context"

	"github.com/MKhiriev/memory-circle/models"
)

// JournalService manages the entries collection.
type JournalService interface {
	// SaveEntry upserts the entry, assigning a fresh id when absent.
	// Returns the persisted entry.
	SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	// GetEntry retrieves a single entry by id.
	GetEntry(ctx context.Context, id string) (models.Entry, error)
	// ListEntries returns entries matching the filter, newest first;
	// entries with unparseable dates sort last.
	ListEntries(ctx context.Context, filter ListFilter) ([]models.Entry, error)
	// DeleteEntry removes an entry. Removing a missing id is a no-op.
	DeleteEntry(ctx context.Context, id string) error
}

// PeopleService manages the people collection and its link to entries.
type PeopleService interface {
	// SavePerson upserts the person, assigning a fresh id when absent.
	SavePerson(ctx context.Context, person models.Person) (models.Person, error)
	// GetPerson retrieves a single person by id.
	GetPerson(ctx context.Context, id string) (models.Person, error)
	// GetPeople returns every person with MemoriesCount recomputed from the
	// entries that tag them. The stored counter is never trusted.
	GetPeople(ctx context.Context) ([]models.Person, error)
	// DeletePerson removes the person and untags the id from every
	// referencing entry. Every affected entry is attempted; per-entry
	// outcomes are reported in the result slice. An unknown id returns
	// store.ErrPersonNotFound before anything is touched.
	DeletePerson(ctx context.Context, id string) ([]UntagResult, error)
}

// ProfileService manages the profile slot, the local passcode, and the
// onboarding flag.
type ProfileService interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) error
	SetPasscode(ctx context.Context, passcode string) error
	VerifyPasscode(ctx context.Context, passcode string) (bool, error)
	HasPasscode(ctx context.Context) (bool, error)
	RemovePasscode(ctx context.Context) error
	IsOnboarded(ctx context.Context) (bool, error)
	CompleteOnboarding(ctx context.Context) error
	// Logout clears the profile, passcode, and onboarded slots. Journal
	// data is left in place.
	Logout(ctx context.Context) error
}

// ListFilter narrows ListEntries results. Zero-valued fields are ignored.
type ListFilter struct {
	PersonID      string
	Mood          string
	HighlightOnly bool
}

// UntagResult reports the outcome of removing a person id from one entry
// during DeletePerson.
type UntagResult struct {
	EntryID string
	// Changed is true when the entry actually referenced the person and was
	// rewritten. Membership, not people-list length, decides this.
	Changed bool
	Err     error
}
