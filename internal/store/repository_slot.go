package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/memory-circle/internal/logger"
)

// Well-known slot names. A slot holds one serialized value per name; readers
// decide the value encoding (JSON for settings and profile, an opaque hash
// for the passcode, "true" for the onboarded flag).
const (
	SlotSettings  = "settings"
	SlotProfile   = "profile"
	SlotPasscode  = "passcode"
	SlotOnboarded = "onboarded"
)

// slotRepository is the SQLite-backed implementation of [SlotRepository].
type slotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSlotRepository constructs a [SlotRepository] backed by the provided
// database connection and logger.
func NewSlotRepository(db *DB, logger *logger.Logger) SlotRepository {
	return &slotRepository{
		DB:     db,
		logger: logger,
	}
}

// Get retrieves the value stored under name. The boolean reports whether the
// slot exists; an absent slot is not an error.
func (r *slotRepository) Get(ctx context.Context, name string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var value string

	err := r.DB.QueryRowContext(ctx, selectSlotByName, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		log.Err(err).
			Str("func", "slotRepository.Get").
			Str("slot", name).
			Msg("failed to read slot")
		return "", false, storageFailure(err)
	}

	return value, true, nil
}

// Set stores value under name, overwriting any previous value.
func (r *slotRepository) Set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertSlot, name, value); err != nil {
		log.Err(err).
			Str("func", "slotRepository.Set").
			Str("slot", name).
			Msg("failed to write slot")
		return storageFailure(err)
	}

	return nil
}

// Delete removes the slot. Deleting an absent slot is a no-op.
func (r *slotRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSlotByName, name); err != nil {
		log.Err(err).
			Str("func", "slotRepository.Delete").
			Str("slot", name).
			Msg("failed to delete slot")
		return storageFailure(err)
	}

	return nil
}
