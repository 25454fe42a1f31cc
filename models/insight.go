package models

// SimplifiedEntry is the projection of an Entry consumed by the insight
// engine's digest synthesis. Keeping the projection this narrow decouples
// the engine from presentation concerns such as images and audio.
type SimplifiedEntry struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    string `json:"date,omitempty"`
}

// MoodCount is one row of the mood distribution.
type MoodCount struct {
	Mood  string `json:"name"`
	Count int    `json:"value"`
}

// TopicCount is one row of the topic distribution.
type TopicCount struct {
	Topic string `json:"name"`
	Count int    `json:"value"`
}

// DayActivity is one activity bucket: a calendar day with its entry count.
type DayActivity struct {
	// Day is the bucket key in YYYY-MM-DD form.
	Day string `json:"day"`
	// Label is the short display form of the day ("Oct 24").
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats is the deterministic aggregate over a set of entries.
type Stats struct {
	// Total is the number of aggregated entries. Mood counts always sum to
	// Total; topic counts may sum to less (entries matching no topic are
	// excluded).
	Total int `json:"total"`

	// MoodCounts is sorted by count descending; ties keep the order in which
	// the moods were first encountered in the input.
	MoodCounts []MoodCount `json:"moodCounts"`

	// DominantMood is the mode of MoodCounts, or "N/A" for empty input.
	DominantMood string `json:"dominantMood"`

	TopicCounts []TopicCount `json:"topicCounts"`
	TopTopic    string       `json:"topTopic,omitempty"`

	// Activity holds the most recent 7 distinct days with entries, in
	// chronological order. Entries with unparseable dates are excluded here
	// but still counted in mood and topic stats.
	Activity []DayActivity `json:"activity"`

	// Highlights are the 3 most recent highlight-flagged entries, newest
	// first; entries with unparseable dates sort last.
	Highlights []Entry `json:"highlights"`

	// WeekendLeaning is true when more than half of the entries with
	// parseable dates fall on Saturday or Sunday.
	WeekendLeaning bool `json:"weekendLeaning"`
}

// Digest is the synthesized narrative produced from a set of entries.
type Digest struct {
	// Theme is a short theme label ("Radiant Days").
	Theme string `json:"theme"`

	// Insight is a one-line observation.
	Insight string `json:"insight"`

	// Digest is the assembled multi-sentence narrative paragraph.
	Digest string `json:"digest"`

	// Tags holds up to 4 hashtag-style tags: the mood tag first, then the
	// topic tag when present, then a conditional weekend tag, then filler.
	Tags []string `json:"tags"`

	// Quote is drawn from the dominant mood's quote pool. It is the only
	// non-deterministic part of the digest.
	Quote string `json:"quote"`
}
