// Package workers runs the server's background jobs. The only job today is
// the tombstone purger, which physically removes deleted objects once every
// client has had a reasonable window to observe the tombstone.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/store"
)

const defaultPurgeRetention = 30 * 24 * time.Hour

// TombstonePurger periodically removes tombstoned objects whose last write
// is older than the retention window. A client offline longer than the
// window misses the tombstone and recovers through a full resync.
type TombstonePurger struct {
	repository store.SyncRepository
	classes    []string

	interval  time.Duration
	retention time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTombstonePurger creates the purger for the given object classes. A
// non-positive interval disables the job: Start becomes a no-op. Zero
// retention selects the default window. The job is idle until Start is
// called.
func NewTombstonePurger(repository store.SyncRepository, classes []string, interval, retention time.Duration, logger *logger.Logger) *TombstonePurger {
	if retention <= 0 {
		retention = defaultPurgeRetention
	}

	return &TombstonePurger{
		repository: repository,
		classes:    classes,
		interval:   interval,
		retention:  retention,
		logger:     logger,
	}
}

// Start stops any previously running job, then launches a background
// goroutine that purges every class once per interval. The goroutine exits
// when ctx is cancelled or Stop is called. A purger built with a
// non-positive interval stays disabled and Start returns immediately.
func (p *TombstonePurger) Start(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Info().
			Str("func", "TombstonePurger.Start").
			Msg("tombstone purger is disabled")
		return
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.purgeOnce(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the job is not running.
func (p *TombstonePurger) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *TombstonePurger) purgeOnce(ctx context.Context) {
	cutoff := time.Now().Add(-p.retention)

	for _, class := range p.classes {
		purged, err := p.repository.PurgeTombstones(ctx, class, cutoff)
		if err != nil {
			p.logger.Err(err).
				Str("func", "TombstonePurger.purgeOnce").
				Str("object_class", class).
				Msg("tombstone purge failed")
			continue
		}

		if purged > 0 {
			p.logger.Info().
				Str("func", "TombstonePurger.purgeOnce").
				Str("object_class", class).
				Int64("purged", purged).
				Msg("tombstones purged")
		}
	}
}
