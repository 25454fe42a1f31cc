// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings manages the user preference toggles stored in the
// settings slot. Stored values are merged over the defaults on every read,
// so toggles added in later versions pick up their default until the user
// touches them.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/models"
)

// Service reads and writes the settings slot and notifies subscribers of
// changes.
type Service struct {
	slots  store.SlotRepository
	logger *logger.Logger

	mu   sync.Mutex
	subs map[int]chan models.Settings
	next int
}

// NewService constructs a settings Service over the given slot repository.
func NewService(slots store.SlotRepository, log *logger.Logger) *Service {
	return &Service{
		slots:  slots,
		logger: log,
		subs:   make(map[int]chan models.Settings),
	}
}

// Current returns the effective settings: defaults overlaid with whatever
// the user has stored. A malformed stored slot falls back to defaults.
func (s *Service) Current(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := s.slots.Get(ctx, store.SlotSettings)
	if err != nil {
		return models.Settings{}, fmt.Errorf("read settings slot: %w", err)
	}
	if !ok {
		return models.DefaultSettings(), nil
	}

	var stored models.Settings
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Err(err).
			Str("func", "settings.Service.Current").
			Msg("settings slot is malformed, using defaults")
		return models.DefaultSettings(), nil
	}

	// Overlay stored toggles on the defaults. A plain merge cannot tell an
	// explicit false from an absent toggle, so only keys present in the
	// stored map override.
	effective := models.DefaultSettings()
	for name, value := range stored.Toggles {
		effective.Toggles[name] = value
	}

	return effective, nil
}

// SetToggle flips one named toggle and persists the result. Subscribers are
// notified with the new effective settings.
func (s *Service) SetToggle(ctx context.Context, name string, value bool) (models.Settings, error) {
	log := logger.FromContext(ctx)

	current, err := s.Current(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	current.Toggles[name] = value

	raw, err := json.Marshal(current)
	if err != nil {
		return models.Settings{}, fmt.Errorf("encode settings: %w", err)
	}

	if err = s.slots.Set(ctx, store.SlotSettings, string(raw)); err != nil {
		return models.Settings{}, fmt.Errorf("write settings slot: %w", err)
	}

	log.Info().
		Str("func", "settings.Service.SetToggle").
		Str("toggle", name).
		Bool("value", value).
		Msg("toggle updated")

	s.notify(current)

	return current, nil
}

// HideLocations reports whether location hiding is active. Presentation
// callers consult this before rendering a location; the stored data itself
// is never altered.
func (s *Service) HideLocations(ctx context.Context) bool {
	current, err := s.Current(ctx)
	if err != nil {
		return false
	}
	return current.On(models.ToggleHideLocations)
}

// Subscribe registers for settings change notifications. The returned cancel
// func must be called to release the subscription. Notifications are dropped
// rather than blocked when the subscriber is not ready.
func (s *Service) Subscribe() (<-chan models.Settings, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++

	ch := make(chan models.Settings, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (s *Service) notify(current models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- current.Clone():
		default:
		}
	}
}
