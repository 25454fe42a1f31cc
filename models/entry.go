package models

// Entry represents a single journaled memory.
// It is the primary persistence model of the journal; JSON tags follow the
// backup document field names so an exported entry round-trips unchanged.
type Entry struct {
	// ID is the opaque unique identifier of the entry. Assigned once at
	// creation and immutable afterwards. Saving is an upsert keyed by ID.
	ID string `json:"id"`

	// Title is a short free-text caption for the entry.
	Title string `json:"title"`

	// Date and Time are display-formatted strings as captured by the user.
	// They are not guaranteed to be ISO; see the dates package for the
	// tolerated formats.
	Date string `json:"date"`
	Time string `json:"time"`

	// Location is free text or a privacy placeholder.
	Location string `json:"location"`

	// Mood is the mood label of the entry. The capture flow produces values
	// from the closed Mood vocabulary, but the store accepts any string for
	// backward compatibility with pre-existing data.
	Mood string `json:"mood"`

	// Content is the journal text of the entry.
	Content string `json:"content"`

	// ImageURL is a self-contained image reference: either a URL or a large
	// inline-encoded payload (data URL).
	ImageURL string `json:"imageUrl"`

	// AudioURL is an optional inline-encoded audio clip;
	// AudioDuration is its length in seconds.
	AudioURL      string  `json:"audioUrl,omitempty"`
	AudioDuration float64 `json:"audioDuration,omitempty"`

	// PeopleIDs is the set of Person ids tagged on this entry. Order carries
	// no meaning and referential integrity is not enforced by the store: an
	// entry may reference a deleted person id and readers must degrade
	// gracefully.
	PeopleIDs []string `json:"peopleIds"`

	// IsHighlight elevates the entry in curated views.
	IsHighlight bool `json:"isHighlight,omitempty"`

	// Coordinates is an optional captured location.
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	// UnlockDate and IsCapsule form the optional time-capsule lock. The lock
	// is a read-time policy enforced by consumers, not by the store.
	UnlockDate string `json:"unlockDate,omitempty"`
	IsCapsule  bool   `json:"isCapsule,omitempty"`
}

// Coordinates is a latitude/longitude pair. Stored and displayed only;
// no geocoding is performed.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HasPerson reports whether the given person id is tagged on the entry.
func (e Entry) HasPerson(id string) bool {
	for _, pid := range e.PeopleIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// WithoutPerson returns a copy of the entry with the given person id removed
// from PeopleIDs. The original entry is left untouched.
func (e Entry) WithoutPerson(id string) Entry {
	filtered := make([]string, 0, len(e.PeopleIDs))
	for _, pid := range e.PeopleIDs {
		if pid != id {
			filtered = append(filtered, pid)
		}
	}
	e.PeopleIDs = filtered
	return e
}
