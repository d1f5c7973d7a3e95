package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/models"
)

// syncRepository is the PostgreSQL-backed implementation of [SyncRepository].
// It executes all engine queries against the "sync_objects" and
// "sync_counter" tables using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with structured
// fields (object_class, server_id, session version, etc.).
type syncRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository] backed by the provided
// database connection and logger.
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	return &syncRepository{
		DB:     db,
		logger: logger,
	}
}

// BeginSession opens the upload session transaction, takes the counter row
// lock and allocates the session version as committed+1.
//
// The lock is held until Commit or Rollback, so sessions are fully
// serialized: cross-session version values strictly increase in commit
// order, and concurrent creates racing on one origin identity resolve to a
// winner and a replay rather than a constraint error.
func (s *syncRepository) BeginSession(ctx context.Context) (SyncSession, error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "syncRepository.BeginSession").Msg("failed to begin session transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	var committed int64
	if err = tx.QueryRowContext(ctx, lockCounterForSession).Scan(&committed); err != nil {
		tx.Rollback()
		log.Err(err).Str("func", "syncRepository.BeginSession").Msg("failed to lock sync counter")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &syncSession{
		tx:      tx,
		version: committed + 1,
	}, nil
}

// SnapshotBound returns the committed counter value. It deliberately runs
// outside any session so it never waits on the counter lock.
func (s *syncRepository) SnapshotBound(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var committed int64
	if err := s.DB.QueryRowContext(ctx, selectCommittedVersion).Scan(&committed); err != nil {
		log.Err(err).Str("func", "syncRepository.SnapshotBound").Msg("failed to read committed version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return committed, nil
}

// SelectChanged returns one page of the change feed described by q.
func (s *syncRepository) SelectChanged(ctx context.Context, q ChangeQuery) ([]models.SyncObject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChangedQuery(q)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.SelectChanged").
			Str("object_class", q.ObjectClass).
			Msg("failed to build change feed query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.SelectChanged").
			Str("object_class", q.ObjectClass).
			Int64("after_version", q.AfterVersion).
			Int64("max_version", q.MaxVersion).
			Msg("failed to execute change feed query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SyncObject, 0, q.Limit)

	for rows.Next() {
		var object models.SyncObject

		if scanErr := scanSyncObject(rows, &object); scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncRepository.SelectChanged").
				Str("object_class", q.ObjectClass).
				Msg("failed to scan sync object row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, object)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncRepository.SelectChanged").
			Str("object_class", q.ObjectClass).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// RecoverCounter raises the persisted counter to max(version) across all
// classes and returns the resulting value.
func (s *syncRepository) RecoverCounter(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var committed int64
	if err := s.DB.QueryRowContext(ctx, recoverCounter).Scan(&committed); err != nil {
		log.Err(err).Str("func", "syncRepository.RecoverCounter").Msg("failed to recover sync counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "syncRepository.RecoverCounter").
		Int64("committed_version", committed).
		Msg("sync counter recovered")

	return committed, nil
}

// PurgeTombstones removes tombstoned rows older than cutoff.
func (s *syncRepository) PurgeTombstones(ctx context.Context, objectClass string, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := s.DB.ExecContext(ctx, purgeTombstones, objectClass, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.PurgeTombstones").
			Str("object_class", objectClass).
			Msg("failed to purge tombstones")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}

// buildSelectChangedQuery assembles the change feed SELECT with squirrel.
// The owner predicate is present only for the authenticated feed.
func buildSelectChangedQuery(q ChangeQuery) (string, []any, error) {
	builder := sq.Select(
		"server_id",
		"object_class",
		"origin_client_id",
		"origin_client_local_id",
		"last_updated_by_client_id",
		"owner_user_id",
		"version",
		"deleted",
		"payload",
	).
		From("sync_objects").
		Where(sq.Eq{"object_class": q.ObjectClass}).
		Where(sq.Gt{"version": q.AfterVersion}).
		Where(sq.LtOrEq{"version": q.MaxVersion}).
		OrderBy("version ASC", "server_id ASC").
		PlaceholderFormat(sq.Dollar)

	if q.OwnerUserID != nil {
		builder = builder.Where(sq.Eq{"owner_user_id": *q.OwnerUserID})
	}
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}

	return builder.ToSql()
}

// syncSession implements [SyncSession] over one *sql.Tx that already holds
// the counter row lock.
type syncSession struct {
	tx      *sql.Tx
	version int64
	done    bool
}

func (s *syncSession) Version() int64 {
	return s.version
}

func (s *syncSession) FindByOrigin(ctx context.Context, objectClass string, originClientID, originClientLocalID int64) (models.SyncObject, error) {
	var object models.SyncObject

	row := s.tx.QueryRowContext(ctx, findObjectByOrigin, objectClass, originClientID, originClientLocalID)
	if err := scanSyncObject(row, &object); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncObject{}, ErrObjectNotFound
		}
		return models.SyncObject{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return object, nil
}

func (s *syncSession) FindByServerID(ctx context.Context, objectClass string, serverID int64) (models.SyncObject, error) {
	var object models.SyncObject

	row := s.tx.QueryRowContext(ctx, findObjectByServerID, objectClass, serverID)
	if err := scanSyncObject(row, &object); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncObject{}, ErrObjectNotFound
		}
		return models.SyncObject{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return object, nil
}

func (s *syncSession) InsertObject(ctx context.Context, object models.SyncObject) (models.SyncObject, error) {
	err := s.tx.QueryRowContext(ctx, insertObject,
		object.ObjectClass,
		object.OriginClientID,
		object.OriginClientLocalID,
		object.LastUpdatedByClientID,
		object.OwnerUserID,
		object.Version,
		object.Deleted,
		[]byte(object.Payload),
	).Scan(&object.ServerID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.SyncObject{}, fmt.Errorf("%w: %w", ErrDuplicateOrigin, err)
		}
		return models.SyncObject{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return object, nil
}

func (s *syncSession) ApplyUpdate(ctx context.Context, object models.SyncObject) error {
	var newVersion int64

	err := s.tx.QueryRowContext(ctx, applyAcceptedUpdate,
		[]byte(object.Payload),
		object.Deleted,
		object.Version,
		object.LastUpdatedByClientID,
		object.ObjectClass,
		object.ServerID,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStaleVersion
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *syncSession) Commit(ctx context.Context) error {
	if _, err := s.tx.ExecContext(ctx, advanceCounter, s.version); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// The transaction is finished either way after Commit.
	s.done = true
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *syncSession) Rollback() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncObject(row rowScanner, object *models.SyncObject) error {
	var payload []byte

	err := row.Scan(
		&object.ServerID,
		&object.ObjectClass,
		&object.OriginClientID,
		&object.OriginClientLocalID,
		&object.LastUpdatedByClientID,
		&object.OwnerUserID,
		&object.Version,
		&object.Deleted,
		&payload,
	)
	if err != nil {
		return err
	}

	object.Payload = payload
	return nil
}
