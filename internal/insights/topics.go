// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package insights computes journal statistics and synthesizes a short
// narrative digest from them. Everything here is a pure computation over
// projected entries; no storage or network access.
package insights

import "strings"

// topicEntry pairs a topic label with its keyword list. Classification
// order matters: an entry matching several topics is counted once, for the
// first topic in this table whose keyword list matches.
type topicEntry struct {
	name     string
	keywords []string
}

var topicTable = []topicEntry{
	{"work", []string{"work", "job", "office", "project", "meeting", "deadline", "career", "busy"}},
	{"family", []string{"family", "mom", "dad", "sister", "brother", "kids", "home", "parents"}},
	{"love", []string{"love", "date", "partner", "relationship", "heart", "kiss", "romantic"}},
	{"nature", []string{"nature", "park", "tree", "sun", "rain", "sky", "beach", "mountain", "walk"}},
	{"food", []string{"food", "eat", "dinner", "lunch", "breakfast", "coffee", "tea", "restaurant", "cook"}},
	{"travel", []string{"travel", "trip", "flight", "train", "hotel", "explore", "vacation", "journey"}},
	{"growth", []string{"learn", "study", "read", "book", "grow", "improve", "challenge", "goal"}},
}

// classifyTopic returns the first topic whose keyword list matches the
// lower-cased text, or "" when none matches.
func classifyTopic(text string) string {
	lower := strings.ToLower(text)
	for _, topic := range topicTable {
		for _, keyword := range topic.keywords {
			if strings.Contains(lower, keyword) {
				return topic.name
			}
		}
	}
	return ""
}
