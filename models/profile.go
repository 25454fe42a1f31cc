package models

// Profile is the single-value user profile slot.
type Profile struct {
	// Name is the display name of the user.
	Name string `json:"name"`

	// Avatar is an optional inline-encoded avatar image.
	Avatar string `json:"avatar,omitempty"`

	// IsSupporter marks users who support the project.
	IsSupporter bool `json:"isSupporter"`

	// JoinedDate is the account creation time in Unix milliseconds.
	JoinedDate int64 `json:"joinedDate"`
}
