package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memory-circle/models"
)

func TestSimplify_NewestFirstCappedAtFifteen(t *testing.T) {
	entries := make([]models.Entry, 0, 20)
	for i := 1; i <= 20; i++ {
		entries = append(entries, models.Entry{
			Content: fmt.Sprintf("day %d", i),
			Mood:    "Calm",
			Date:    fmt.Sprintf("2026-07-%02d", i),
		})
	}

	simplified := Simplify(entries)

	require.Len(t, simplified, 15)
	assert.Equal(t, "day 20", simplified[0].Content)
	assert.Equal(t, "day 6", simplified[14].Content)
	assert.Equal(t, "2026-07-20T00:00:00Z", simplified[0].Date)
}

func TestSimplify_DropsUnparseableDates(t *testing.T) {
	simplified := Simplify([]models.Entry{
		{Content: "dated", Mood: "Joyful", Date: "2026-08-01"},
		{Content: "undated", Mood: "Sad", Date: "someday"},
	})

	require.Len(t, simplified, 2)
	assert.Equal(t, "dated", simplified[0].Content)
	assert.NotEmpty(t, simplified[0].Date)
	assert.Equal(t, "undated", simplified[1].Content)
	assert.Empty(t, simplified[1].Date, "unparseable date text must not leak into the projection")
}

func TestSimplify_DoesNotMutateInput(t *testing.T) {
	entries := []models.Entry{
		{Content: "b", Date: "2026-08-01"},
		{Content: "a", Date: "2026-08-02"},
	}

	Simplify(entries)

	assert.Equal(t, "b", entries[0].Content)
}
