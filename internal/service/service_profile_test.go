package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memory-circle/internal/config"
	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

func newTestProfileSvc(t *testing.T) (*profileService, *store.Storages) {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	svc := NewProfileService(storages.Slots, logger.Nop()).(*profileService)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC) }

	return svc, storages
}

func TestProfileService_GetProfile_DefaultWhenAbsent(t *testing.T) {
	svc, _ := newTestProfileSvc(t)

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "User", profile.Name)
	assert.False(t, profile.IsSupporter)
	assert.Equal(t, svc.now().UnixMilli(), profile.JoinedDate)
}

func TestProfileService_UpdateThenGet(t *testing.T) {
	svc, _ := newTestProfileSvc(t)
	ctx := context.Background()

	want := models.Profile{Name: "Maria", IsSupporter: true, JoinedDate: 1700000000000}
	require.NoError(t, svc.UpdateProfile(ctx, want))

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_UpdateProfile_RequiresName(t *testing.T) {
	svc, _ := newTestProfileSvc(t)

	err := svc.UpdateProfile(context.Background(), models.Profile{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_PasscodeLifecycle(t *testing.T) {
	svc, _ := newTestProfileSvc(t)
	ctx := context.Background()

	// no passcode yet
	has, err := svc.HasPasscode(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = svc.VerifyPasscode(ctx, "1234")
	assert.ErrorIs(t, err, ErrNoPasscodeSet)

	// set and verify
	require.NoError(t, svc.SetPasscode(ctx, "1234"))

	ok, err := svc.VerifyPasscode(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyPasscode(ctx, "9999")
	require.NoError(t, err)
	assert.False(t, ok)

	// the stored value is a hash, not the passcode
	stored, found, err := svc.slots.Get(ctx, store.SlotPasscode)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEqual(t, "1234", stored)

	// remove
	require.NoError(t, svc.RemovePasscode(ctx))
	has, err = svc.HasPasscode(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestProfileService_SetPasscode_RejectsEmpty(t *testing.T) {
	svc, _ := newTestProfileSvc(t)

	err := svc.SetPasscode(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_OnboardingFlag(t *testing.T) {
	svc, _ := newTestProfileSvc(t)
	ctx := context.Background()

	onboarded, err := svc.IsOnboarded(ctx)
	require.NoError(t, err)
	assert.False(t, onboarded)

	require.NoError(t, svc.CompleteOnboarding(ctx))

	onboarded, err = svc.IsOnboarded(ctx)
	require.NoError(t, err)
	assert.True(t, onboarded)
}

func TestProfileService_LogoutClearsIdentitySlotsOnly(t *testing.T) {
	svc, storages := newTestProfileSvc(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateProfile(ctx, models.Profile{Name: "Maria"}))
	require.NoError(t, svc.SetPasscode(ctx, "1234"))
	require.NoError(t, svc.CompleteOnboarding(ctx))
	require.NoError(t, storages.Entries.Put(ctx, models.Entry{ID: "keep"}))

	require.NoError(t, svc.Logout(ctx))

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "User", profile.Name, "profile reset to default")

	has, err := svc.HasPasscode(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	onboarded, err := svc.IsOnboarded(ctx)
	require.NoError(t, err)
	assert.False(t, onboarded)

	// journal data survives logout
	_, err = storages.Entries.Get(ctx, "keep")
	assert.NoError(t, err)
}
