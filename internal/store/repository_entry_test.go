package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/models"
)

func newMockedEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &entryRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func entryColumns() []string {
	return []string{
		"id", "title", "date", "time", "location", "mood", "content", "image_url",
		"audio_url", "audio_duration", "people_ids", "is_highlight", "lat", "lng",
		"is_capsule", "unlock_date",
	}
}

func TestEntryRepositoryGetAll_QueryError(t *testing.T) {
	repo, mock, db := newMockedEntryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM entries").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestEntryRepositoryGetAll_MalformedPeopleIDs(t *testing.T) {
	repo, mock, db := newMockedEntryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(entryColumns()).
		AddRow("e1", "t", "2026-01-01", "10:00", "", "Calm", "text", "",
			"", 0.0, "not-json", false, nil, nil, false, "")

	mock.ExpectQuery("SELECT (.+) FROM entries").WillReturnRows(rows)

	_, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if errors.Is(err, ErrStorageUnavailable) {
		t.Fatal("malformed record must not be reported as a medium failure")
	}
}

func TestEntryRepositoryPut_ExecError(t *testing.T) {
	repo, mock, db := newMockedEntryRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO entries").
		WillReturnError(errors.New("database is locked"))

	err := repo.Put(context.Background(), models.Entry{ID: "e1"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestEntryRepositoryList_BuildsMoodCondition(t *testing.T) {
	repo, mock, db := newMockedEntryRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(entryColumns()).
		AddRow("e1", "t", "2026-01-01", "10:00", "", "Joyful", "text", "",
			"", 0.0, `["p1"]`, false, nil, nil, false, "")

	mock.ExpectQuery("SELECT (.+) FROM entries WHERE mood = ?").
		WithArgs("Joyful").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), EntryFilter{Mood: "Joyful"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("expected the single joyful entry, got %+v", got)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
