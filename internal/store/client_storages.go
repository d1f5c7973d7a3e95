package store

import (
	"context"
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
)

// ClientStorages groups the agent's local repositories.
type ClientStorages struct {
	Objects LocalObjectRepository

	DB *DB
}

// NewClientStorages opens the agent's local SQLite database, applies the
// local schema and constructs the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Objects: NewLocalObjectRepository(db, log),
		DB:      db,
	}, nil
}
