// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/internal/store"
	"github.com/MKhiriev/memory-circle/internal/utils"
	"github.com/MKhiriev/memory-circle/models"
)

// peopleService is the concrete implementation of PeopleService. It owns the
// people collection and the entry-side cleanup when a person is removed.
type peopleService struct {
	people  store.PersonRepository
	entries store.EntryRepository
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewPeopleService constructs a PeopleService over the given repositories.
func NewPeopleService(people store.PersonRepository, entries store.EntryRepository, logger *logger.Logger) PeopleService {
	return &peopleService{
		people:  people,
		entries: entries,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// SavePerson upserts the person, assigning a fresh id when absent. The
// stored MemoriesCount is written as-is; reads recompute it.
func (p *peopleService) SavePerson(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	if person.Name == "" {
		return models.Person{}, ErrInvalidDataProvided
	}
	if person.ID == "" {
		person.ID = p.uuid.Generate()
	}

	if err := p.people.Put(ctx, person); err != nil {
		log.Err(err).
			Str("func", "peopleService.SavePerson").
			Str("person_id", person.ID).
			Msg("failed to save person")
		return models.Person{}, fmt.Errorf("failed to save person: %w", err)
	}

	return person, nil
}

// GetPerson retrieves one person with MemoriesCount recomputed from the
// entries tagging them.
func (p *peopleService) GetPerson(ctx context.Context, id string) (models.Person, error) {
	if id == "" {
		return models.Person{}, ErrInvalidDataProvided
	}

	person, err := p.people.Get(ctx, id)
	if err != nil {
		return models.Person{}, err
	}

	tagged, err := p.entries.List(ctx, store.EntryFilter{PersonID: id})
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to count tagged entries: %w", err)
	}
	person.MemoriesCount = len(tagged)

	return person, nil
}

// GetPeople returns every person with MemoriesCount recomputed from the
// entries collection. The derived counts are not written back to the store.
func (p *peopleService) GetPeople(ctx context.Context) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	people, err := p.people.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "peopleService.GetPeople").
			Msg("failed to get people")
		return nil, fmt.Errorf("failed to get people: %w", err)
	}

	entries, err := p.entries.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "peopleService.GetPeople").
			Msg("failed to get entries for counting")
		return nil, fmt.Errorf("failed to get entries for counting: %w", err)
	}

	counts := make(map[string]int, len(people))
	for _, entry := range entries {
		for _, pid := range entry.PeopleIDs {
			counts[pid]++
		}
	}

	for idx := range people {
		people[idx].MemoriesCount = counts[people[idx].ID]
	}

	return people, nil
}

// DeletePerson removes the person record, then walks every entry and
// removes the id from the ones that tag it. Whether an entry changed is
// decided by membership of the id, not by comparing list lengths. A failed
// rewrite of one entry does not stop the walk; per-entry outcomes are
// collected in the result. An unknown id returns [store.ErrPersonNotFound]
// before anything is touched.
func (p *peopleService) DeletePerson(ctx context.Context, id string) ([]UntagResult, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return nil, ErrInvalidDataProvided
	}

	if _, err := p.people.Get(ctx, id); err != nil {
		log.Err(err).
			Str("func", "peopleService.DeletePerson").
			Str("person_id", id).
			Msg("failed to look up person before deletion")
		return nil, err
	}

	if err := p.people.Delete(ctx, id); err != nil {
		log.Err(err).
			Str("func", "peopleService.DeletePerson").
			Str("person_id", id).
			Msg("failed to delete person")
		return nil, fmt.Errorf("failed to delete person: %w", err)
	}

	entries, err := p.entries.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "peopleService.DeletePerson").
			Str("person_id", id).
			Msg("failed to load entries for untagging")
		return nil, fmt.Errorf("failed to load entries for untagging: %w", err)
	}

	results := make([]UntagResult, 0, len(entries))
	for _, entry := range entries {
		if !entry.HasPerson(id) {
			continue
		}

		result := UntagResult{EntryID: entry.ID, Changed: true}
		if putErr := p.entries.Put(ctx, entry.WithoutPerson(id)); putErr != nil {
			log.Err(putErr).
				Str("func", "peopleService.DeletePerson").
				Str("person_id", id).
				Str("entry_id", entry.ID).
				Msg("failed to untag entry, continuing")
			result.Err = putErr
		}
		results = append(results, result)
	}

	log.Info().
		Str("func", "peopleService.DeletePerson").
		Str("person_id", id).
		Int("untagged_count", len(results)).
		Msg("person deleted")

	return results, nil
}
