package service

import (
	"context"
	"sync"
	"time"

	"github.com/tuckersync/tucker-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// clientSyncJob runs FullSync on a fixed interval until stopped.
type clientSyncJob struct {
	service ClientSyncService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a stopped job around the given sync service.
func NewClientSyncJob(service ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		service: service,
		logger:  logger,
	}
}

// Start implements [ClientSyncJob]. A second call stops the previous run
// before starting a new one. The first cycle runs immediately, not after
// the first tick.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		j.logger.Info().
			Str("func", "clientSyncJob.Start").
			Dur("interval", interval).
			Msg("periodic sync started")

		j.syncOnce(jobCtx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				j.syncOnce(jobCtx)
			}
		}
	}()
}

// Stop implements [ClientSyncJob]. Safe to call on a job that was never
// started.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()

	j.logger.Info().
		Str("func", "clientSyncJob.Stop").
		Msg("periodic sync stopped")
}

func (j *clientSyncJob) syncOnce(ctx context.Context) {
	if err := j.service.FullSync(ctx); err != nil {
		j.logger.Error().Err(err).
			Str("func", "clientSyncJob.syncOnce").
			Msg("sync cycle failed")
		return
	}

	j.logger.Debug().
		Str("func", "clientSyncJob.syncOnce").
		Msg("sync cycle completed")
}
