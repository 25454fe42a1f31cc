package models

// Person is a named individual from the user's inner circle that may be
// tagged on one or more entries.
type Person struct {
	// ID is the opaque unique identifier of the person. Immutable.
	ID string `json:"id"`

	// Name and Role are free text ("Margaret", "Mom").
	Name string `json:"name"`
	Role string `json:"role"`

	// MemoriesCount is a denormalized counter kept for display and backup
	// compatibility. It is NOT authoritative: the true membership count is
	// derived by scanning entries' PeopleIDs at read time, and derived values
	// are never written back to this field.
	MemoriesCount int `json:"memoriesCount"`

	// ImageURL is the avatar reference.
	ImageURL string `json:"imageUrl"`

	// Bio is optional free text.
	Bio string `json:"bio,omitempty"`
}
