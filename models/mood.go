package models

// Mood is the closed mood vocabulary produced by the capture flow.
// It is a producer-side contract only: the store and the insight engine
// accept arbitrary strings so that pre-existing data keeps working.
type Mood string

const (
	MoodJoyful   Mood = "Joyful"
	MoodCalm     Mood = "Calm"
	MoodPeaceful Mood = "Peaceful"
	MoodPensive  Mood = "Pensive"
	MoodDynamic  Mood = "Dynamic"
	MoodSad      Mood = "Sad"
)

// Moods lists the closed vocabulary in display order.
func Moods() []Mood {
	return []Mood{MoodJoyful, MoodCalm, MoodPeaceful, MoodPensive, MoodDynamic, MoodSad}
}

// Valid reports whether m belongs to the closed vocabulary.
func (m Mood) Valid() bool {
	for _, known := range Moods() {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string { return string(m) }
