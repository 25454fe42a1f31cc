// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

// profileService is the concrete implementation of ProfileService. The
// profile and the passcode live in their own slots; the passcode is stored
// as a bcrypt hash, never in the clear.
type profileService struct {
	slots  store.SlotRepository
	logger *logger.Logger

	now func() time.Time
}

// NewProfileService constructs a ProfileService over the given slot
// repository.
func NewProfileService(slots store.SlotRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		slots:  slots,
		logger: logger,
		now:    time.Now,
	}
}

// GetProfile returns the stored profile, or a default one (name "User",
// joined now) when none is stored yet. A malformed slot also yields the
// default rather than an error.
func (p *profileService) GetProfile(ctx context.Context) (models.Profile, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := p.slots.Get(ctx, store.SlotProfile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read profile slot: %w", err)
	}
	if !ok {
		return p.defaultProfile(), nil
	}

	var profile models.Profile
	if err = json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Err(err).
			Str("func", "profileService.GetProfile").
			Msg("profile slot is malformed, using default")
		return p.defaultProfile(), nil
	}

	return profile, nil
}

// UpdateProfile persists the profile wholesale. Partial-update merging is a
// caller concern: read, modify, write back.
func (p *profileService) UpdateProfile(ctx context.Context, profile models.Profile) error {
	if profile.Name == "" {
		return ErrInvalidDataProvided
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return p.slots.Set(ctx, store.SlotProfile, string(raw))
}

// SetPasscode hashes the passcode with bcrypt and stores the hash.
func (p *profileService) SetPasscode(ctx context.Context, passcode string) error {
	log := logger.FromContext(ctx)

	if passcode == "" {
		return ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).
			Str("func", "profileService.SetPasscode").
			Msg("failed to hash passcode")
		return fmt.Errorf("failed to hash passcode: %w", err)
	}

	return p.slots.Set(ctx, store.SlotPasscode, string(hash))
}

// VerifyPasscode compares the candidate against the stored hash. Returns
// [ErrNoPasscodeSet] when no passcode is stored.
func (p *profileService) VerifyPasscode(ctx context.Context, passcode string) (bool, error) {
	stored, ok, err := p.slots.Get(ctx, store.SlotPasscode)
	if err != nil {
		return false, fmt.Errorf("read passcode slot: %w", err)
	}
	if !ok {
		return false, ErrNoPasscodeSet
	}

	err = bcrypt.CompareHashAndPassword([]byte(stored), []byte(passcode))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("compare passcode: %w", err)
	}

	return true, nil
}

// HasPasscode reports whether a passcode hash is stored.
func (p *profileService) HasPasscode(ctx context.Context) (bool, error) {
	_, ok, err := p.slots.Get(ctx, store.SlotPasscode)
	if err != nil {
		return false, fmt.Errorf("read passcode slot: %w", err)
	}
	return ok, nil
}

// RemovePasscode deletes the stored passcode hash.
func (p *profileService) RemovePasscode(ctx context.Context) error {
	return p.slots.Delete(ctx, store.SlotPasscode)
}

// IsOnboarded reports whether onboarding has been completed.
func (p *profileService) IsOnboarded(ctx context.Context) (bool, error) {
	_, ok, err := p.slots.Get(ctx, store.SlotOnboarded)
	if err != nil {
		return false, fmt.Errorf("read onboarded slot: %w", err)
	}
	return ok, nil
}

// CompleteOnboarding marks onboarding as done.
func (p *profileService) CompleteOnboarding(ctx context.Context) error {
	return p.slots.Set(ctx, store.SlotOnboarded, "true")
}

// Logout clears the profile, passcode, and onboarded slots. Each deletion
// is attempted regardless of the others failing.
func (p *profileService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, slot := range []string{store.SlotProfile, store.SlotPasscode, store.SlotOnboarded} {
		if err := p.slots.Delete(ctx, slot); err != nil {
			log.Err(err).
				Str("func", "profileService.Logout").
				Str("slot", slot).
				Msg("failed to clear slot, continuing")
			errs = append(errs, fmt.Errorf("clear %s: %w", slot, err))
		}
	}

	return errors.Join(errs...)
}

func (p *profileService) defaultProfile() models.Profile {
	return models.Profile{
		Name:       "User",
		JoinedDate: p.now().UnixMilli(),
	}
}
