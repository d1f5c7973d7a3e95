package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/mock"
)

func TestTombstonePurger_PurgesEveryClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	var mu sync.Mutex
	purged := make(map[string]int)
	done := make(chan struct{})

	repo.EXPECT().PurgeTombstones(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, class string, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().Add(-time.Minute), cutoff, 5*time.Second)

			mu.Lock()
			defer mu.Unlock()
			purged[class]++
			if len(purged) == 2 {
				select {
				case <-done:
				default:
					close(done)
				}
			}
			return 1, nil
		}).MinTimes(2)

	purger := NewTombstonePurger(repo, []string{"contact", "note"}, 10*time.Millisecond, time.Minute, logger.Nop())
	purger.Start(context.Background())
	defer purger.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("purger did not run for every class in time")
	}

	purger.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Contains(t, purged, "contact")
	require.Contains(t, purged, "note")
}

func TestTombstonePurger_ZeroIntervalDisablesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)

	purger := NewTombstonePurger(repo, []string{"contact"}, 0, time.Minute, logger.Nop())
	purger.Start(context.Background())

	time.Sleep(30 * time.Millisecond)

	purger.Stop()
}

func TestTombstonePurger_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository(ctrl)
	repo.EXPECT().PurgeTombstones(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	purger := NewTombstonePurger(repo, []string{"contact"}, 10*time.Millisecond, time.Minute, logger.Nop())

	purger.Stop() // not running yet

	purger.Start(context.Background())
	purger.Stop()
	purger.Stop()
}
