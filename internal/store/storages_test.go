package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/models"
)

func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestEntryRepository_PutGetRoundTrip(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	entry := models.Entry{
		ID:            "e1",
		Title:         "Morning walk",
		Date:          "2026-08-14",
		Time:          "09:30",
		Location:      "Riverside park",
		Mood:          string(models.MoodCalm),
		Content:       "Walked along the river before work.",
		ImageURL:      "https://example.com/walk.jpg",
		AudioDuration: 12.5,
		PeopleIDs:     []string{"p1", "p2"},
		IsHighlight:   true,
		Coordinates:   &models.Coordinates{Lat: 55.75, Lng: 37.61},
	}

	if err := s.Entries.Put(ctx, entry); err != nil {
		t.Fatalf("unexpected error on put: %v", err)
	}

	got, err := s.Entries.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("unexpected error on get: %v", err)
	}

	if got.Title != entry.Title || got.Mood != entry.Mood || !got.IsHighlight {
		t.Errorf("entry fields did not survive round trip: %+v", got)
	}
	if len(got.PeopleIDs) != 2 || got.PeopleIDs[0] != "p1" {
		t.Errorf("expected people ids [p1 p2], got %v", got.PeopleIDs)
	}
	if got.Coordinates == nil || got.Coordinates.Lat != 55.75 {
		t.Errorf("expected coordinates to survive, got %+v", got.Coordinates)
	}
}

func TestEntryRepository_PutOverwritesExisting(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	entry := models.Entry{ID: "e1", Title: "First title", PeopleIDs: []string{}}
	if err := s.Entries.Put(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry.Title = "Second title"
	if err := s.Entries.Put(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := s.Entries.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one entry after overwrite, got %d", len(all))
	}
	if all[0].Title != "Second title" {
		t.Errorf("expected overwritten title, got %q", all[0].Title)
	}
}

func TestEntryRepository_GetMissing(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.Entries.Get(context.Background(), "missing")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryRepository_DeleteMissingIsNoOp(t *testing.T) {
	s := newTestStorages(t)

	if err := s.Entries.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("expected no error deleting missing entry, got %v", err)
	}
}

func TestEntryRepository_NilCoordinatesStayNil(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	if err := s.Entries.Put(ctx, models.Entry{ID: "e1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Entries.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Coordinates != nil {
		t.Errorf("expected nil coordinates, got %+v", got.Coordinates)
	}
	if got.PeopleIDs == nil || len(got.PeopleIDs) != 0 {
		t.Errorf("expected empty people ids slice, got %v", got.PeopleIDs)
	}
}

func TestEntryRepository_ListByMoodAndHighlight(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	seed := []models.Entry{
		{ID: "e1", Mood: "Joyful", IsHighlight: true, PeopleIDs: []string{"p1"}},
		{ID: "e2", Mood: "Joyful", PeopleIDs: []string{}},
		{ID: "e3", Mood: "Sad", IsHighlight: true, PeopleIDs: []string{"p1"}},
	}
	for _, e := range seed {
		if err := s.Entries.Put(ctx, e); err != nil {
			t.Fatalf("unexpected error seeding: %v", err)
		}
	}

	joyful, err := s.Entries.List(ctx, EntryFilter{Mood: "Joyful"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(joyful) != 2 {
		t.Errorf("expected 2 joyful entries, got %d", len(joyful))
	}

	highlights, err := s.Entries.List(ctx, EntryFilter{HighlightOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(highlights) != 2 {
		t.Errorf("expected 2 highlights, got %d", len(highlights))
	}

	tagged, err := s.Entries.List(ctx, EntryFilter{PersonID: "p1", HighlightOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tagged) != 2 {
		t.Errorf("expected 2 highlighted entries tagging p1, got %d", len(tagged))
	}
}

func TestPersonRepository_CRUD(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	person := models.Person{ID: "p1", Name: "Anna", Role: "Sister", Bio: "Lives nearby."}
	if err := s.People.Put(ctx, person); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.People.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Anna" || got.Role != "Sister" {
		t.Errorf("person did not survive round trip: %+v", got)
	}

	if err = s.People.Delete(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.People.Get(ctx, "p1")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound after delete, got %v", err)
	}
}

func TestSlotRepository_GetReportsAbsence(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, ok, err := s.Slots.Get(ctx, SlotSettings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected absent slot before first write")
	}

	if err = s.Slots.Set(ctx, SlotSettings, `{"dailyReminder":true}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := s.Slots.Get(ctx, SlotSettings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != `{"dailyReminder":true}` {
		t.Errorf("expected stored slot value, got ok=%v value=%q", ok, value)
	}
}

func TestStorages_ClearAllEmptiesEveryCollection(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	if err := s.Entries.Put(ctx, models.Entry{ID: "e1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.People.Put(ctx, models.Person{ID: "p1", Name: "Anna"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Slots.Set(ctx, SlotOnboarded, "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.Entries.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries after clear, got %d", len(entries))
	}

	_, ok, err := s.Slots.Get(ctx, SlotOnboarded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected slots cleared")
	}
}

func TestStorages_ReplaceAllSwapsCollectionsButKeepsSlots(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	if err := s.Entries.Put(ctx, models.Entry{ID: "old"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Slots.Set(ctx, SlotOnboarded, "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newEntries := []models.Entry{
		{ID: "n1", Title: "Restored", PeopleIDs: []string{"p9"}},
		{ID: "n2", Coordinates: &models.Coordinates{Lat: 1, Lng: 2}},
	}
	newPeople := []models.Person{{ID: "p9", Name: "Oleg"}}

	if err := s.ReplaceAll(ctx, newEntries, newPeople); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.Entries.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after replace, got %d", len(entries))
	}
	if _, err = s.Entries.Get(ctx, "old"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected old entry gone, got %v", err)
	}

	people, err := s.People.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 1 || people[0].Name != "Oleg" {
		t.Errorf("expected replaced people, got %+v", people)
	}

	_, ok, err := s.Slots.Get(ctx, SlotOnboarded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected slots preserved across replace")
	}
}
