package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/mock"
)

func TestClientSyncJob_RunsOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockClientSyncService(ctrl)

	done := make(chan struct{})
	calls := 0
	syncService.EXPECT().FullSync(gomock.Any()).DoAndReturn(func(context.Context) error {
		calls++
		if calls == 2 {
			close(done)
		}
		return nil
	}).MinTimes(2)

	job := NewClientSyncJob(syncService, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sync job did not run twice in time")
	}
}

func TestClientSyncJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockClientSyncService(ctrl)
	syncService.EXPECT().FullSync(gomock.Any()).Return(nil).AnyTimes()

	job := NewClientSyncJob(syncService, logger.Nop())

	// Stopping a job that never started must not block.
	job.Stop()

	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}
