// Package adapter provides the transport layer the sync client uses to talk
// to a tucker-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]). In-band protocol codes are mapped
// to the sentinel errors in errors.go so callers can use [errors.Is] for
// transport-agnostic handling.
package adapter

import (
	"context"

	"github.com/tuckersync/tucker-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with a tucker-sync
// server. Implementations are responsible for serialisation, bearer token
// management and mapping transport-level failures to the sentinel errors of
// this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Register creates a server account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the server and stores the returned token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// RegisterClient maps this installation's UUID to a durable client
	// identity. Idempotent per UUID.
	RegisterClient(ctx context.Context, installUUID string) (models.Client, error)

	// SyncUp submits one upload session for objectClass. Returns
	// [ErrFullSyncRequired] when the server demands a full resync.
	SyncUp(ctx context.Context, objectClass string, req models.SyncUpRequest) (models.SyncUpResponse, error)

	// SyncDown fetches one page of the authenticated change feed.
	SyncDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error)

	// BaseDataDown fetches one page of a shareable class without
	// authentication.
	BaseDataDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error)

	// CheckResync asks the server whether the watermark is still
	// serviceable.
	CheckResync(ctx context.Context, watermark int64) (models.ResyncState, error)
}
