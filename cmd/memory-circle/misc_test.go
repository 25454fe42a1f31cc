package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

func newSeededStorages(t *testing.T) *store.Storages {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open in-memory storage: %v", err)
	}
	t.Cleanup(func() { storages.Close() })

	ctx := context.Background()
	if err = storages.Entries.Put(ctx, models.Entry{ID: "e1", Title: "Beach day", Content: "sand everywhere"}); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	if err = storages.People.Put(ctx, models.Person{ID: "p1", Name: "Anna"}); err != nil {
		t.Fatalf("failed to seed person: %v", err)
	}
	if err = storages.Slots.Set(ctx, store.SlotSettings, `{"toggles":{"hideLocations":true}}`); err != nil {
		t.Fatalf("failed to seed settings slot: %v", err)
	}

	return storages
}

func TestEraseAllCmd_WipesEverything(t *testing.T) {
	storages := newSeededStorages(t)
	a = app{storages: storages}
	yesFlag = true
	t.Cleanup(func() {
		a = app{}
		yesFlag = false
	})

	ctx := context.Background()
	out := &bytes.Buffer{}
	eraseAllCmd.SetOut(out)
	eraseAllCmd.SetContext(ctx)

	if err := eraseAllCmd.RunE(eraseAllCmd, nil); err != nil {
		t.Fatalf("unexpected erase error: %v", err)
	}

	entries, err := storages.Entries.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to read entries after erase: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries after erase, got %d", len(entries))
	}

	people, err := storages.People.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to read people after erase: %v", err)
	}
	if len(people) != 0 {
		t.Errorf("expected no people after erase, got %d", len(people))
	}

	_, found, err := storages.Slots.Get(ctx, store.SlotSettings)
	if err != nil {
		t.Fatalf("failed to read settings slot after erase: %v", err)
	}
	if found {
		t.Error("expected settings slot to be wiped as well")
	}

	if !strings.Contains(out.String(), "All data erased.") {
		t.Errorf("expected erase confirmation in output, got %q", out.String())
	}
}

func TestEraseAllCmd_DeclinedConfirmationKeepsData(t *testing.T) {
	storages := newSeededStorages(t)
	a = app{storages: storages}
	yesFlag = false
	t.Cleanup(func() { a = app{} })

	ctx := context.Background()
	out := &bytes.Buffer{}
	eraseAllCmd.SetOut(out)
	eraseAllCmd.SetIn(strings.NewReader("n\n"))
	eraseAllCmd.SetContext(ctx)

	if err := eraseAllCmd.RunE(eraseAllCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := storages.Entries.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to read entries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("declining the prompt must keep the store intact, got %d entries", len(entries))
	}

	if !strings.Contains(out.String(), "Erase cancelled.") {
		t.Errorf("expected cancellation notice in output, got %q", out.String())
	}
}
