package store

import (
	"context"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
)

// Storages bundles all server-side repositories over one shared database
// connection.
type Storages struct {
	SyncRepository SyncRepository
	UserRepository UserRepository

	// DB is exposed for migrations and shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return Storages{}, err
	}

	return Storages{
		SyncRepository: NewSyncRepository(db, log),
		UserRepository: NewUserRepository(db, log),
		DB:             db,
	}, nil
}
