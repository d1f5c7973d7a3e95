package workers

import (
	"context"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/store"
)

// Workers aggregates the background jobs started alongside the server.
type Workers struct {
	Purger *TombstonePurger
}

// NewWorkers constructs the background jobs from configuration.
func NewWorkers(repository store.SyncRepository, cfg *config.StructuredConfig, log *logger.Logger) *Workers {
	classes := make([]string, 0, len(cfg.Sync.Classes))
	for _, class := range cfg.Sync.Classes {
		classes = append(classes, class.Name)
	}

	return &Workers{
		Purger: NewTombstonePurger(repository, classes, cfg.Workers.PurgeInterval, cfg.Workers.PurgeRetention, log),
	}
}

// Start launches all jobs.
func (w *Workers) Start(ctx context.Context) {
	w.Purger.Start(ctx)
}

// Stop stops all jobs and waits for them to exit.
func (w *Workers) Stop() {
	w.Purger.Stop()
}
