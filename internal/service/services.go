package service

import (
	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/schema"
	"github.com/tuckersync/tucker-sync/internal/store"
)

// Services aggregates the application services behind one container passed
// to the transport layer.
type Services struct {
	SyncService
	AuthService
}

// NewServices wires the services over the storage container.
func NewServices(storages store.Storages, registry *schema.Registry, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	syncService, err := NewSyncService(storages.SyncRepository, registry, cfg.Sync, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		SyncService: syncService,
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, log),
	}, nil
}
