// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package insights

import (
	"sort"
	"time"

	"github.com/MKhiriev/memory-circle/internal/dates"
	"github.com/MKhiriev/memory-circle/models"
)

// DominantMoodNone is the sentinel dominant mood for an empty input.
const DominantMoodNone = "N/A"

// Aggregate computes deterministic statistics over the given entries.
//
// Mood and topic counts are sorted descending; ties keep first-encountered
// input order. Entries whose date text does not parse are excluded from
// time-based figures (activity buckets, highlight ordering tweaks, weekend
// leaning) but still count toward mood and topic statistics.
func Aggregate(entries []models.Entry) models.Stats {
	stats := models.Stats{
		Total:        len(entries),
		DominantMood: DominantMoodNone,
		MoodCounts:   []models.MoodCount{},
		TopicCounts:  []models.TopicCount{},
		Activity:     []models.DayActivity{},
		Highlights:   []models.Entry{},
	}
	if len(entries) == 0 {
		return stats
	}

	stats.MoodCounts = countMoods(entries)
	stats.DominantMood = stats.MoodCounts[0].Mood

	stats.TopicCounts = countTopics(entries)
	if len(stats.TopicCounts) > 0 {
		stats.TopTopic = stats.TopicCounts[0].Topic
	}

	stats.Activity = bucketByDay(entries)
	stats.Highlights = topHighlights(entries)
	stats.WeekendLeaning = weekendLeaning(entries)

	return stats
}

func countMoods(entries []models.Entry) []models.MoodCount {
	index := make(map[string]int, len(models.Moods()))
	counts := make([]models.MoodCount, 0, len(models.Moods()))

	for _, entry := range entries {
		if pos, seen := index[entry.Mood]; seen {
			counts[pos].Count++
			continue
		}
		index[entry.Mood] = len(counts)
		counts = append(counts, models.MoodCount{Mood: entry.Mood, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

func countTopics(entries []models.Entry) []models.TopicCount {
	index := make(map[string]int, len(topicTable))
	counts := make([]models.TopicCount, 0, len(topicTable))

	for _, entry := range entries {
		topic := classifyTopic(entry.Content)
		if topic == "" {
			continue
		}
		if pos, seen := index[topic]; seen {
			counts[pos].Count++
			continue
		}
		index[topic] = len(counts)
		counts = append(counts, models.TopicCount{Topic: topic, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

// bucketByDay groups dated entries by calendar day and keeps the 7 most
// recent distinct days, ordered chronologically.
func bucketByDay(entries []models.Entry) []models.DayActivity {
	byDay := make(map[string]int)
	labels := make(map[string]string)

	for _, entry := range entries {
		day, ok := dates.Parse(entry.Date)
		if !ok {
			continue
		}
		key := dates.DayKey(day)
		byDay[key]++
		labels[key] = dates.DayLabel(day)
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) > 7 {
		keys = keys[len(keys)-7:]
	}

	activity := make([]models.DayActivity, 0, len(keys))
	for _, key := range keys {
		activity = append(activity, models.DayActivity{
			Day:   key,
			Label: labels[key],
			Count: byDay[key],
		})
	}

	return activity
}

// topHighlights returns up to the 3 most recent highlight entries, with
// undated highlights sorting after dated ones.
func topHighlights(entries []models.Entry) []models.Entry {
	highlights := make([]models.Entry, 0, 3)
	for _, entry := range entries {
		if entry.IsHighlight {
			highlights = append(highlights, entry)
		}
	}

	sort.SliceStable(highlights, func(i, j int) bool {
		return highlightTime(highlights[i]).After(highlightTime(highlights[j]))
	})

	if len(highlights) > 3 {
		highlights = highlights[:3]
	}

	return highlights
}

func highlightTime(entry models.Entry) time.Time {
	if t, ok := dates.Parse(entry.Date); ok {
		return t
	}
	return time.Time{}
}

// weekendLeaning reports whether more than half of the dated entries fall
// on a Saturday or Sunday. Undated entries do not count either way.
func weekendLeaning(entries []models.Entry) bool {
	dated, weekend := 0, 0
	for _, entry := range entries {
		t, ok := dates.Parse(entry.Date)
		if !ok {
			continue
		}
		dated++
		if dates.IsWeekend(t) {
			weekend++
		}
	}
	return dated > 0 && weekend*2 > dated
}
