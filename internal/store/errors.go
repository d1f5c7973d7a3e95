package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoClientWasFound is returned when a client identity lookup produces
	// an empty result set.
	ErrNoClientWasFound = errors.New("no client was found")

	// ErrObjectNotFound is returned when a sync object lookup (by origin
	// identity or by server identity) matches no row.
	ErrObjectNotFound = errors.New("sync object was not found")

	// ErrDuplicateOrigin is returned when an INSERT hits the unique
	// (object_class, origin_client_id, origin_client_local_id) index.
	// With upload sessions serialized on the counter row this signals a
	// duplicate inside one batch rather than a cross-session race.
	ErrDuplicateOrigin = errors.New("duplicate origin identity")

	// ErrStaleVersion is returned when the guarded UPDATE of an accepted
	// write affects no row because the stored version is already at or past
	// the session version. The per-object version-only-increases invariant
	// is enforced at this level regardless of engine decisions.
	ErrStaleVersion = errors.New("stored version is not older than the session version")

	// ErrNoMetaValue is returned by the agent's local store when a meta key
	// has never been set.
	ErrNoMetaValue = errors.New("no meta value was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
