package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/memory-circle/internal/logger"
	"github.com/MKhiriev/memory-circle/models"
)

// personRepository is the SQLite-backed implementation of [PersonRepository].
type personRepository struct {
	*DB
	logger *logger.Logger
}

// NewPersonRepository constructs a [PersonRepository] backed by the provided
// database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	return &personRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll retrieves every stored person in unspecified order.
func (r *personRepository) GetAll(ctx context.Context) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllPeople)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.GetAll").
			Msg("failed to execute query for getting all people")
		return nil, storageFailure(err)
	}
	defer rows.Close()

	people := make([]models.Person, 0, 20)

	for rows.Next() {
		var person models.Person

		scanErr := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Role,
			&person.MemoriesCount,
			&person.ImageURL,
			&person.Bio,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.GetAll").
				Msg("failed to scan person row")
			return nil, storageFailure(scanErr)
		}

		people = append(people, person)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, storageFailure(rowsErr)
	}

	return people, nil
}

// Get retrieves a single person by id.
//
// Returns [ErrPersonNotFound] when no person has the given id.
func (r *personRepository) Get(ctx context.Context, id string) (models.Person, error) {
	log := logger.FromContext(ctx)

	var person models.Person

	err := r.DB.QueryRowContext(ctx, selectPersonByID, id).Scan(
		&person.ID,
		&person.Name,
		&person.Role,
		&person.MemoriesCount,
		&person.ImageURL,
		&person.Bio,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Person{}, ErrPersonNotFound
		}
		log.Err(err).
			Str("func", "personRepository.Get").
			Str("person_id", id).
			Msg("failed to scan person row")
		return models.Person{}, storageFailure(err)
	}

	return person, nil
}

// Put saves the person, inserting when the id is new and overwriting the
// stored record otherwise.
func (r *personRepository) Put(ctx context.Context, person models.Person) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertPerson,
		person.ID,
		person.Name,
		person.Role,
		person.MemoriesCount,
		person.ImageURL,
		person.Bio,
	)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.Put").
			Str("person_id", person.ID).
			Msg("failed to upsert person")
		return storageFailure(err)
	}

	log.Debug().
		Str("func", "personRepository.Put").
		Str("person_id", person.ID).
		Msg("person saved")

	return nil
}

// Delete removes the person with the given id. Entries tagging the person
// are left untouched; untagging is a service-level concern.
func (r *personRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deletePersonByID, id); err != nil {
		log.Err(err).
			Str("func", "personRepository.Delete").
			Str("person_id", id).
			Msg("failed to delete person")
		return storageFailure(err)
	}

	return nil
}
