package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned (wrapped) when the underlying medium
	// rejects an operation: the database file cannot be opened or written,
	// the disk is full, or a statement fails at the SQL level. Operations
	// failing this way are safe to retry.
	ErrStorageUnavailable = errors.New("storage medium unavailable")

	// ErrMalformedRecord is returned (wrapped) when a stored row cannot be
	// decoded into its record type, e.g. the people_ids column does not hold
	// a valid JSON array. Callers should catch and skip or surface it; it
	// never crashes the store.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEntryNotFound is returned when a read targets an entry id that does
	// not exist. Deleting a nonexistent id is a no-op, not this error.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrPersonNotFound is returned when a read targets a person id that
	// does not exist.
	ErrPersonNotFound = errors.New("person was not found")
)

// Low-level database operation errors, returned (or wrapped) when a SQL-level
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty filter produced no valid statement).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)

// storageFailure tags err as a medium-level failure so callers can
// distinguish it from malformed-record errors via [errors.Is].
func storageFailure(err error) error {
	return errors.Join(ErrStorageUnavailable, err)
}

// malformedRecord tags err as a record decoding failure.
func malformedRecord(err error) error {
	return errors.Join(ErrMalformedRecord, err)
}
