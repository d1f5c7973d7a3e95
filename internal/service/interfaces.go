package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/tuckersync/tucker-sync/models"
)

// SyncService is the synchronization engine: it assigns authoritative
// versions, deduplicates resent creations, resolves conflicting writes and
// produces bounded, resumable change feeds.
type SyncService interface {
	// SyncUp processes one upload session for the given object class on
	// behalf of the authenticated user. Per-object conflicts and rejections
	// are ordinary results; a returned error means the whole batch was
	// aborted with no effect.
	SyncUp(ctx context.Context, objectClass string, userID int64, req models.SyncUpRequest) (models.SyncUpResponse, error)

	// SyncDown returns one page of objects owned by userID changed since the
	// request watermark, bounded by the committed snapshot.
	SyncDown(ctx context.Context, objectClass string, userID int64, req models.SyncDownRequest) (models.SyncDownResponse, error)

	// BaseDataDown is the unauthenticated variant of SyncDown for classes
	// marked shareable: no owner predicate is applied.
	BaseDataDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error)

	// CheckResync reports whether a client watermark is still serviceable.
	CheckResync(ctx context.Context, watermark int64) (models.ResyncState, error)
}

// AuthService is the authentication glue around the engine: account
// registration and login, token lifecycle, and client identity management.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// RegisterClient maps a per-install UUID to a durable client identity
	// for the authenticated user. Idempotent per UUID.
	RegisterClient(ctx context.Context, userID int64, installUUID string) (models.Client, error)

	// VerifyClient checks that clientID exists and belongs to userID.
	VerifyClient(ctx context.Context, userID, clientID int64) error
}
