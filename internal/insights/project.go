package insights

import (
	"sort"
	"time"

	"github.com/MKhiriev/memory-circle/internal/dates"
	"github.com/MKhiriev/memory-circle/models"
)

// digestInputCap bounds how many entries feed a digest. Older entries add
// little to the narrative and bloat the topic scan.
const digestInputCap = 15

// Simplify projects full entries onto the digest input shape: content, mood
// and a normalized date. Entries are ordered newest first (undated last,
// keeping input order) and capped at the most recent 15. Parseable dates are
// normalized to RFC 3339; unparseable date text is dropped from the
// projection rather than passed through.
func Simplify(entries []models.Entry) []models.SimplifiedEntry {
	ordered := make([]models.Entry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		ti, iOK := dates.Parse(ordered[i].Date)
		tj, jOK := dates.Parse(ordered[j].Date)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.After(tj)
	})

	if len(ordered) > digestInputCap {
		ordered = ordered[:digestInputCap]
	}

	simplified := make([]models.SimplifiedEntry, 0, len(ordered))
	for _, entry := range ordered {
		s := models.SimplifiedEntry{Content: entry.Content, Mood: entry.Mood}
		if t, ok := dates.Parse(entry.Date); ok {
			s.Date = t.Format(time.RFC3339)
		}
		simplified = append(simplified, s)
	}

	return simplified
}
