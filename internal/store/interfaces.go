package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/tuckersync/tucker-sync/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ChangeQuery describes one page of the change feed. OwnerUserID nil selects
// the unauthenticated base-data variant (no owner predicate).
type ChangeQuery struct {
	ObjectClass  string
	OwnerUserID  *int64
	AfterVersion int64
	MaxVersion   int64
	Limit        uint64
}

// SyncRepository is the storage surface of the sync engine.
//
// BeginSession opens one upload session: a database transaction holding the
// counter row lock, with a freshly allocated session version. All other
// methods run outside any session.
type SyncRepository interface {
	BeginSession(ctx context.Context) (SyncSession, error)

	// SnapshotBound returns the highest version guaranteed fully committed.
	// Readers bounded by it can never observe a session still in flight.
	SnapshotBound(ctx context.Context) (int64, error)

	// SelectChanged returns objects matching q ordered by (version,
	// server_id). The caller asks for one more row than its page size to
	// detect truncation.
	SelectChanged(ctx context.Context, q ChangeQuery) ([]models.SyncObject, error)

	// RecoverCounter raises the persisted counter to max(version) across all
	// object classes. Called once at startup.
	RecoverCounter(ctx context.Context) (int64, error)

	// PurgeTombstones physically removes tombstoned objects of the class
	// whose last write is older than cutoff. Returns the number of rows
	// removed.
	PurgeTombstones(ctx context.Context, objectClass string, cutoff time.Time) (int64, error)
}

// SyncSession is one atomic upload session. Every read and write inside it
// observes and produces uncommitted state invisible to concurrent readers
// until Commit. Rollback discards everything, including the session version
// allocation.
type SyncSession interface {
	// Version is the SyncVersion stamped on every write accepted in this
	// session.
	Version() int64

	FindByOrigin(ctx context.Context, objectClass string, originClientID, originClientLocalID int64) (models.SyncObject, error)
	FindByServerID(ctx context.Context, objectClass string, serverID int64) (models.SyncObject, error)

	// InsertObject persists a new object and returns it with the assigned
	// ServerID. The object's Version must already carry the session version.
	InsertObject(ctx context.Context, object models.SyncObject) (models.SyncObject, error)

	// ApplyUpdate overwrites payload, tombstone and last-updater of an
	// existing object, stamping the session version.
	ApplyUpdate(ctx context.Context, object models.SyncObject) error

	// Commit advances the global counter to the session version and makes
	// all of the session's writes visible atomically.
	Commit(ctx context.Context) error

	// Rollback discards the session. Safe to call after Commit (no-op).
	Rollback() error
}

// UserRepository persists the auth glue entities: user accounts and client
// installation identities.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// RegisterClient maps an install UUID to a durable client identity;
	// registering the same UUID again returns the original identity.
	RegisterClient(ctx context.Context, userID int64, installUUID string) (models.Client, error)
	FindClient(ctx context.Context, clientID int64) (models.Client, error)
}
