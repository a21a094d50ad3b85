package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBagNotFound is returned when no bag has the requested id.
	ErrBagNotFound = errors.New("bag was not found")

	// ErrVialNotFound is returned when no vial batch has the requested id.
	ErrVialNotFound = errors.New("vial was not found")

	// ErrOutOfStock is returned when consuming from a batch with no vials left.
	ErrOutOfStock = errors.New("no vials to consume")

	// ErrBagAlreadyFrozen is returned when freezing a bag that was frozen before.
	ErrBagAlreadyFrozen = errors.New("bag is already frozen")

	// ErrVialHasNoSourceBag is returned when unfreezing a batch that does not
	// reference an existing bag (entered directly or its bag was deleted).
	ErrVialHasNoSourceBag = errors.New("vial has no source bag to unfreeze into")

	// ErrUnsupportedOrderField is returned when a query orders by a column
	// that is not whitelisted.
	ErrUnsupportedOrderField = errors.New("unsupported order field")

	// ErrConstraintViolation is returned when the database rejects a write
	// because of a CHECK, NOT NULL, UNIQUE or FOREIGN KEY constraint.
	ErrConstraintViolation = errors.New("database constraint violated")

	// ErrStoreUnavailable is returned when the database reports a transient
	// condition (busy, locked, connection lost).
	ErrStoreUnavailable = errors.New("database is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
