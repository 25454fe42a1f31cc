// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package insights

import (
	"sort"
	"strings"

	"github.com/MKhiriev/memory-circle/internal/dates"
	"github.com/MKhiriev/memory-circle/models"
)

// moodVoice holds the digest fragments used when a mood dominates the input.
type moodVoice struct {
	theme   string
	insight string
	opening string
}

var moodVoices = map[string]moodVoice{
	"Joyful": {
		theme:   "Radiant Days",
		insight: "Happiness flows through your recent moments.",
		opening: "Laughter and light seem to follow you recently.",
	},
	"Calm": {
		theme:   "Inner Peace",
		insight: "You are finding your center.",
		opening: "A sense of tranquility pervades your memories.",
	},
	"Pensive": {
		theme:   "Deep Thoughts",
		insight: "You are exploring the depths of your mind.",
		opening: "Questions and contemplations weave through your days.",
	},
	"Sad": {
		theme:   "Gentle Healing",
		insight: "It's okay to feel deeply.",
		opening: "You've been navigating some heavy emotions lately.",
	},
}

// mixedVoice covers every mood without a dedicated voice.
var mixedVoice = moodVoice{
	theme:   "Colorful Mix",
	insight: "Life is a beautiful spectrum of emotions.",
	opening: "Your recent days have been a rich tapestry of different feelings.",
}

var topicLines = map[string]string{
	"work":   "Your professional life has been a significant focus, driving your energy.",
	"family": "Family connections are grounding you and providing warmth.",
	"love":   "Romance or deep connection is highlighting your days.",
	"nature": "The natural world has been a source of comfort and inspiration.",
	"travel": "Adventure calls, and you are answering with exploration.",
	"food":   "You've been savoring the flavors of life, quite literally.",
	"growth": "You are in a period of learning and self-improvement.",
}

const (
	noTopicLine  = "Various small moments are adding up to a bigger picture."
	weekendLine  = "You seem to thrive most during your leisure time."
	weekdayLine  = "You are finding meaning in the daily rhythm of life."
	weekendTag   = "#WeekendVibes"
	maxTagsCount = 4
)

// emptyDigest is the fixed response for an empty input. The mood and topic
// pipeline never runs in that case.
func emptyDigest() models.Digest {
	return models.Digest{
		Theme:   "New Beginnings",
		Insight: "Your journey is just starting.",
		Digest:  "The first pages of your story are waiting to be written. Embrace the blank canvas.",
		Tags:    []string{"#Start", "#New", "#Journey", "#Hope", "#Begin"},
		Quote:   "Every journey begins with a single step.",
	}
}

// Analyze synthesizes a narrative digest from the projected entries. The
// output is deterministic for a given input except for the closing quote,
// which is drawn at random from a mood-keyed pool.
func Analyze(entries []models.SimplifiedEntry) models.Digest {
	if len(entries) == 0 {
		return emptyDigest()
	}

	dominantMood := dominantSimplifiedMood(entries)
	topTopic := topSimplifiedTopic(entries)
	weekendVibe := simplifiedWeekendLeaning(entries)

	voice, ok := moodVoices[dominantMood]
	if !ok {
		voice = mixedVoice
	}

	parts := []string{voice.opening}

	if line, found := topicLines[topTopic]; found {
		parts = append(parts, line)
	} else {
		parts = append(parts, noTopicLine)
	}

	if weekendVibe {
		parts = append(parts, weekendLine)
	} else {
		parts = append(parts, weekdayLine)
	}

	tags := []string{"#" + dominantMood}
	if topTopic != "" {
		tags = append(tags, "#"+strings.ToUpper(topTopic[:1])+topTopic[1:])
	}
	if weekendVibe {
		tags = append(tags, weekendTag)
	}
	tags = append(tags, "#Life", "#Reflect")
	if len(tags) > maxTagsCount {
		tags = tags[:maxTagsCount]
	}

	return models.Digest{
		Theme:   voice.theme,
		Insight: voice.insight,
		Digest:  strings.Join(parts, " "),
		Tags:    tags,
		Quote:   pickQuote(dominantMood),
	}
}

func dominantSimplifiedMood(entries []models.SimplifiedEntry) string {
	index := make(map[string]int)
	type moodCount struct {
		mood  string
		count int
	}
	counts := make([]moodCount, 0, len(models.Moods()))

	for _, entry := range entries {
		if pos, seen := index[entry.Mood]; seen {
			counts[pos].count++
			continue
		}
		index[entry.Mood] = len(counts)
		counts = append(counts, moodCount{mood: entry.Mood, count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	return counts[0].mood
}

func topSimplifiedTopic(entries []models.SimplifiedEntry) string {
	index := make(map[string]int, len(topicTable))
	type topicCount struct {
		topic string
		count int
	}
	counts := make([]topicCount, 0, len(topicTable))

	for _, entry := range entries {
		topic := classifyTopic(entry.Content)
		if topic == "" {
			continue
		}
		if pos, seen := index[topic]; seen {
			counts[pos].count++
			continue
		}
		index[topic] = len(counts)
		counts = append(counts, topicCount{topic: topic, count: 1})
	}

	if len(counts) == 0 {
		return ""
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	return counts[0].topic
}

func simplifiedWeekendLeaning(entries []models.SimplifiedEntry) bool {
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
