package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBundleNotFound is returned when a lookup by bundle id matches no row.
	ErrBundleNotFound = errors.New("bundle was not found")

	// ErrNoBundlesProvided is returned by SaveBundles when called with an
	// empty argument list.
	ErrNoBundlesProvided = errors.New("no bundles provided")

	// ErrInvalidInventory is returned when an inventory file cannot be
	// decoded into a list of bundles.
	ErrInvalidInventory = errors.New("invalid inventory file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single bundle row fails.
	ErrScanningRow = errors.New("failed to scan bundle row")

	// ErrScanningRows is returned when iterating over bundle rows fails.
	ErrScanningRows = errors.New("failed to scan bundle rows")
)
