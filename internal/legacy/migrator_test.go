package legacy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
)

func newTestMigrator(t *testing.T) (*Migrator, *store.Storages, string) {
	t.Helper()

	dir := t.TempDir()

	s, err := store.NewStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return NewMigrator(dir, s.Entries, s.People, logger.Nop()), s, dir
}

func writeLegacyFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMigrate_NoLegacyFilesIsNoOp(t *testing.T) {
	m, _, _ := newTestMigrator(t)

	migrated, err := m.Migrate(context.Background())
	require.NoError(t, err)
	assert.False(t, migrated)
}

func TestMigrate_ImportsBothCollectionsAndRemovesFiles(t *testing.T) {
	m, s, dir := newTestMigrator(t)

	entriesPath := writeLegacyFile(t, dir, "mc_memories.json",
		`[{"id":"e1","title":"Old memory","peopleIds":["p1"]},{"id":"e2","title":"Another"}]`)
	peoplePath := writeLegacyFile(t, dir, "mc_people.json",
		`[{"id":"p1","name":"Anna"}]`)

	migrated, err := m.Migrate(context.Background())
	require.NoError(t, err)
	assert.True(t, migrated)

	entries, err := s.Entries.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	person, err := s.People.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", person.Name)

	assert.NoFileExists(t, entriesPath)
	assert.NoFileExists(t, peoplePath)
}

func TestMigrate_SecondRunIsNoOp(t *testing.T) {
	m, _, dir := newTestMigrator(t)

	writeLegacyFile(t, dir, "mc_memories.json", `[{"id":"e1"}]`)

	migrated, err := m.Migrate(context.Background())
	require.NoError(t, err)
	require.True(t, migrated)

	migrated, err = m.Migrate(context.Background())
	require.NoError(t, err)
	assert.False(t, migrated)
}

func TestMigrate_CollectionsAreIndependent(t *testing.T) {
	m, s, dir := newTestMigrator(t)

	// entries file is corrupt, people file is fine
	entriesPath := writeLegacyFile(t, dir, "mc_memories.json", `{not json`)
	writeLegacyFile(t, dir, "mc_people.json", `[{"id":"p1","name":"Anna"}]`)

	migrated, err := m.Migrate(context.Background())
	assert.Error(t, err)
	assert.True(t, migrated, "people collection should still migrate")

	person, getErr := s.People.Get(context.Background(), "p1")
	require.NoError(t, getErr)
	assert.Equal(t, "Anna", person.Name)

	// corrupt file stays on disk for a later retry
	assert.FileExists(t, entriesPath)
}

func TestMigrate_KeepsFileWhenParseFails(t *testing.T) {
	m, _, dir := newTestMigrator(t)

	path := writeLegacyFile(t, dir, "mc_people.json", `"not an array"`)

	migrated, err := m.Migrate(context.Background())
	assert.Error(t, err)
	assert.False(t, migrated)
	assert.FileExists(t, path)
}
