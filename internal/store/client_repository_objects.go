package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/models"
)

// localObjectRepository is the SQLite-backed implementation of
// [LocalObjectRepository].
type localObjectRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalObjectRepository constructs a [LocalObjectRepository] over the
// agent's local database.
func NewLocalObjectRepository(db *DB, logger *logger.Logger) LocalObjectRepository {
	return &localObjectRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localObjectRepository) SaveObject(ctx context.Context, object models.LocalObject) (models.LocalObject, error) {
	err := r.DB.QueryRowContext(ctx, saveLocalObject,
		object.ObjectClass,
		object.ServerID,
		object.Version,
		object.Deleted,
		string(object.Payload),
	).Scan(&object.LocalID)
	if err != nil {
		return models.LocalObject{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	object.Pending = true
	return object, nil
}

func (r *localObjectRepository) PendingObjects(ctx context.Context, objectClass string) ([]models.LocalObject, error) {
	rows, err := r.DB.QueryContext(ctx, selectPendingObjects, objectClass)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var objects []models.LocalObject
	for rows.Next() {
		var object models.LocalObject
		var payload sql.NullString
		err = rows.Scan(
			&object.LocalID,
			&object.ObjectClass,
			&object.ServerID,
			&object.Version,
			&object.Deleted,
			&payload,
			&object.Pending,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if payload.Valid {
			object.Payload = []byte(payload.String)
		}
		objects = append(objects, object)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return objects, nil
}

func (r *localObjectRepository) MarkSynced(ctx context.Context, objectClass string, localID, serverID, version int64) error {
	result, err := r.DB.ExecContext(ctx, markObjectSynced, serverID, version, objectClass, localID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrObjectNotFound
	}

	return nil
}

func (r *localObjectRepository) ApplyRemote(ctx context.Context, object models.SyncObject) error {
	_, err := r.DB.ExecContext(ctx, applyRemoteObject,
		object.ObjectClass,
		object.ServerID,
		object.Version,
		object.Deleted,
		string(object.Payload),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localObjectRepository) Watermark(ctx context.Context, objectClass string) (int64, error) {
	var watermark int64
	err := r.DB.QueryRowContext(ctx, selectWatermark, objectClass).Scan(&watermark)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return watermark, nil
}

func (r *localObjectRepository) SetWatermark(ctx context.Context, objectClass string, watermark int64) error {
	if _, err := r.DB.ExecContext(ctx, upsertWatermark, objectClass, watermark); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localObjectRepository) MarkAllPending(ctx context.Context, objectClass string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, markAllObjectsPending, objectClass); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Warn().
		Str("func", "localObjectRepository.MarkAllPending").
		Str("object_class", objectClass).
		Msg("all local objects flagged for re-upload")

	return nil
}

func (r *localObjectRepository) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, selectMetaValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoMetaValue
		}
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *localObjectRepository) SetMeta(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, upsertMetaValue, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
