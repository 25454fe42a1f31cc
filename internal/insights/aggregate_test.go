package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memory-circle/models"
)

func TestAggregate_EmptyInput(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, DominantMoodNone, stats.DominantMood)
	assert.Empty(t, stats.MoodCounts)
	assert.Empty(t, stats.TopicCounts)
	assert.Empty(t, stats.Activity)
	assert.Empty(t, stats.Highlights)
	assert.False(t, stats.WeekendLeaning)
}

func TestAggregate_MoodTiesKeepInputOrder(t *testing.T) {
	entries := []models.Entry{
		{Mood: "Calm"},
		{Mood: "Joyful"},
		{Mood: "Joyful"},
		{Mood: "Sad"},
		{Mood: "Sad"},
	}

	stats := Aggregate(entries)

	require.Len(t, stats.MoodCounts, 3)
	// Joyful and Sad tie at 2; Joyful came first
	assert.Equal(t, "Joyful", stats.MoodCounts[0].Mood)
	assert.Equal(t, "Sad", stats.MoodCounts[1].Mood)
	assert.Equal(t, "Calm", stats.MoodCounts[2].Mood)
	assert.Equal(t, "Joyful", stats.DominantMood)
}

func TestAggregate_TopicFirstMatchWins(t *testing.T) {
	// "work" keywords come before "family" in the table, so an entry
	// mentioning both counts only toward work.
	entries := []models.Entry{
		{Content: "Busy day at the office, then dinner with family"},
		{Content: "Took the kids home from school"},
	}

	stats := Aggregate(entries)

	require.Len(t, stats.TopicCounts, 2)
	assert.Equal(t, "work", stats.TopicCounts[0].Topic)
	assert.Equal(t, 1, stats.TopicCounts[0].Count)
	assert.Equal(t, "family", stats.TopicCounts[1].Topic)
	assert.Equal(t, "work", stats.TopTopic)
}

func TestAggregate_NonMatchingContentExcludedFromTopics(t *testing.T) {
	stats := Aggregate([]models.Entry{{Content: "zzz qqq"}})

	assert.Empty(t, stats.TopicCounts)
	assert.Empty(t, stats.TopTopic)
	assert.Equal(t, 1, stats.Total)
}

func TestAggregate_ActivityKeepsSevenMostRecentDays(t *testing.T) {
	entries := []models.Entry{
		{Date: "2026-08-01"}, {Date: "2026-08-01"},
		{Date: "2026-08-02"},
		{Date: "2026-08-03"},
		{Date: "2026-08-04"},
		{Date: "2026-08-05"},
		{Date: "2026-08-06"},
		{Date: "2026-08-07"},
		{Date: "2026-08-08"},
		{Date: "not a date"},
	}

	stats := Aggregate(entries)

	require.Len(t, stats.Activity, 7)
	// oldest day drops off
	assert.Equal(t, "2026-08-02", stats.Activity[0].Day)
	assert.Equal(t, "2026-08-08", stats.Activity[6].Day)
	assert.Equal(t, "Aug 2", stats.Activity[0].Label)
	assert.Equal(t, 1, stats.Activity[0].Count)
}

func TestAggregate_UnparseableDatesStillCountForMoods(t *testing.T) {
	entries := []models.Entry{
		{Mood: "Joyful", Date: "whenever"},
		{Mood: "Joyful", Date: "2026-08-01"},
	}

	stats := Aggregate(entries)

	require.Len(t, stats.MoodCounts, 1)
	assert.Equal(t, 2, stats.MoodCounts[0].Count)
	assert.Len(t, stats.Activity, 1)
}

func TestAggregate_HighlightsMostRecentThreeUndatedLast(t *testing.T) {
	entries := []models.Entry{
		{ID: "h1", IsHighlight: true, Date: "2026-01-01"},
		{ID: "h2", IsHighlight: true, Date: "no date"},
		{ID: "h3", IsHighlight: true, Date: "2026-03-01"},
		{ID: "h4", IsHighlight: true, Date: "2026-02-01"},
		{ID: "plain", Date: "2026-04-01"},
	}

	stats := Aggregate(entries)

	require.Len(t, stats.Highlights, 3)
	assert.Equal(t, "h3", stats.Highlights[0].ID)
	assert.Equal(t, "h4", stats.Highlights[1].ID)
	assert.Equal(t, "h1", stats.Highlights[2].ID)
}

func TestAggregate_WeekendLeaning(t *testing.T) {
	// 2026-08-29 is a Saturday, 2026-08-30 a Sunday, 2026-08-26 a Wednesday.
	weekendHeavy := []models.Entry{
		{Date: "2026-08-29"},
		{Date: "2026-08-30"},
		{Date: "2026-08-26"},
		{Date: "gibberish"},
	}
	assert.True(t, Aggregate(weekendHeavy).WeekendLeaning,
		"2 of 3 dated entries on a weekend")

	balanced := []models.Entry{
		{Date: "2026-08-29"},
		{Date: "2026-08-26"},
	}
	assert.False(t, Aggregate(balanced).WeekendLeaning,
		"exactly half is not a majority")
}
