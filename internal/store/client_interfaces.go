package store

import (
	"context"

	"github.com/tuckersync/tucker-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalObjectRepository is the agent's local mirror of synchronized objects,
// backed by SQLite.
type LocalObjectRepository interface {
	// SaveObject persists a new locally-created object. The returned object
	// carries the assigned LocalID and is marked pending.
	SaveObject(ctx context.Context, object models.LocalObject) (models.LocalObject, error)

	// PendingObjects returns every object of the class changed since the
	// last successful upload, in creation order.
	PendingObjects(ctx context.Context, objectClass string) ([]models.LocalObject, error)

	// MarkSynced records the server identity and version for an uploaded
	// object and clears its pending flag.
	MarkSynced(ctx context.Context, objectClass string, localID, serverID, version int64) error

	// ApplyRemote upserts one downloaded object by server identity,
	// clearing the pending flag. The server copy is canonical.
	ApplyRemote(ctx context.Context, object models.SyncObject) error

	// Watermark returns the class's last fully-applied server version, zero
	// when the class has never synced.
	Watermark(ctx context.Context, objectClass string) (int64, error)
	SetWatermark(ctx context.Context, objectClass string, watermark int64) error

	// MarkAllPending flags every object of the class for re-upload. Used by
	// full-resync recovery.
	MarkAllPending(ctx context.Context, objectClass string) error

	// GetMeta and SetMeta persist small agent state values (install UUID,
	// client identity) across restarts.
	GetMeta(ctx context.Context, key string) (string, error)
	SetMeta(ctx context.Context, key, value string) error
}
