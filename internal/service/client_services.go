package service

import (
	"github.com/tuckersync/tucker-sync/internal/adapter"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/store"
)

// ClientServices bundles the agent-side services.
type ClientServices struct {
	Sync ClientSyncService
	Job  ClientSyncJob
}

// NewClientServices wires the agent sync engine and its periodic job.
func NewClientServices(server adapter.ServerAdapter, local store.LocalObjectRepository, classes []string, clientID int64, log *logger.Logger) *ClientServices {
	syncService := NewClientSyncService(server, local, classes, clientID, log)

	return &ClientServices{
		Sync: syncService,
		Job:  NewClientSyncJob(syncService, log),
	}
}
