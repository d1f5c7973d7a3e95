package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService drives the agent's two-way synchronization: it uploads
// pending local changes, applies the per-object verdicts, then pages the
// download feed until the local mirror has caught up.
type ClientSyncService interface {
	// FullSync runs one complete up-then-down cycle for every configured
	// object class. A server demand for a full resync is recovered from
	// inside the call: all local objects are re-flagged, the watermark is
	// reset and the cycle retried once.
	FullSync(ctx context.Context) error
}

// ClientSyncJob runs FullSync on a ticker in the background.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
