package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

func newTestService(t *testing.T) (*Service, *store.Storages) {
	t.Helper()

	s, err := store.NewStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return NewService(s.Slots, logger.Nop()), s
}

func TestCurrent_DefaultsWhenSlotAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)

	assert.True(t, current.On(models.ToggleEncryptionActive))
	assert.True(t, current.On(models.ToggleMemoryAnniversary))
	assert.False(t, current.On(models.ToggleHideLocations))
	assert.False(t, current.On(models.ToggleDailyReminder))
}

func TestCurrent_StoredFalseOverridesDefaultTrue(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.Slots.Set(ctx, store.SlotSettings,
		`{"toggles":{"encryptionActive":false}}`))

	current, err := svc.Current(ctx)
	require.NoError(t, err)

	assert.False(t, current.On(models.ToggleEncryptionActive),
		"an explicit false must win over the default true")
	assert.True(t, current.On(models.ToggleMemoryAnniversary),
		"untouched toggles keep their defaults")
}

func TestCurrent_MalformedSlotFallsBackToDefaults(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.Slots.Set(ctx, store.SlotSettings, "{broken"))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), current)
}

func TestSetToggle_PersistsAndReturnsEffective(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	updated, err := svc.SetToggle(ctx, models.ToggleHideLocations, true)
	require.NoError(t, err)
	assert.True(t, updated.On(models.ToggleHideLocations))

	// a fresh read sees the persisted value
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, current.On(models.ToggleHideLocations))
	assert.True(t, svc.HideLocations(ctx))
}

func TestSubscribe_NotifiedOnChange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ch, cancel := svc.Subscribe()
	defer cancel()

	_, err := svc.SetToggle(ctx, models.ToggleDailyReminder, true)
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.True(t, got.On(models.ToggleDailyReminder))
	default:
		t.Fatal("expected a notification")
	}
}

func TestSubscribe_CancelStopsNotifications(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ch, cancel := svc.Subscribe()
	cancel()

	_, err := svc.SetToggle(ctx, models.ToggleDailyReminder, true)
	require.NoError(t, err)

	_, open := <-ch
	assert.False(t, open, "channel must be closed after cancel")
}
