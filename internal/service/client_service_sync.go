// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/adapter"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/models"
)

// clientSyncService implements [ClientSyncService] over the server adapter
// and the agent's local object store.
type clientSyncService struct {
	server  adapter.ServerAdapter
	local   store.LocalObjectRepository
	classes []string

	// clientID is the durable identity assigned by the server for this
	// installation, stamped on every sync request.
	clientID int64

	logger *logger.Logger
}

// NewClientSyncService creates the agent sync engine for the given classes
// and registered client identity.
func NewClientSyncService(server adapter.ServerAdapter, local store.LocalObjectRepository, classes []string, clientID int64, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		server:   server,
		local:    local,
		classes:  classes,
		clientID: clientID,
		logger:   logger,
	}
}

// FullSync implements [ClientSyncService].
func (s *clientSyncService) FullSync(ctx context.Context) error {
	var errs []error
	for _, class := range s.classes {
		if err := s.syncClass(ctx, class, true); err != nil {
			errs = append(errs, fmt.Errorf("class %q: %w", class, err))
		}
	}
	return errors.Join(errs...)
}

// syncClass runs one up-then-down cycle for a class. allowRecovery permits
// one full-resync recovery pass; the retried cycle runs with recovery
// disabled so a server stuck demanding resyncs cannot loop the agent.
func (s *clientSyncService) syncClass(ctx context.Context, class string, allowRecovery bool) error {
	err := s.uploadPending(ctx, class)
	if err == nil {
		err = s.downloadChanges(ctx, class)
	}

	if errors.Is(err, adapter.ErrFullSyncRequired) && allowRecovery {
		if recoverErr := s.recoverFullResync(ctx, class); recoverErr != nil {
			return recoverErr
		}
		return s.syncClass(ctx, class, false)
	}

	return err
}

func (s *clientSyncService) uploadPending(ctx context.Context, class string) error {
	pending, err := s.local.PendingObjects(ctx, class)
	if err != nil {
		return fmt.Errorf("error loading pending objects: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	watermark, err := s.local.Watermark(ctx, class)
	if err != nil {
		return fmt.Errorf("error loading watermark: %w", err)
	}

	candidates := make([]models.SyncCandidate, 0, len(pending))
	for _, object := range pending {
		candidates = append(candidates, models.SyncCandidate{
			ServerID:            object.ServerID,
			OriginClientLocalID: object.LocalID,
			PriorVersion:        object.Version,
			Deleted:             object.Deleted,
			Payload:             object.Payload,
		})
	}

	resp, err := s.server.SyncUp(ctx, class, models.SyncUpRequest{
		ClientID:  s.clientID,
		Watermark: watermark,
		Objects:   candidates,
	})
	if err != nil {
		return err
	}
	if len(resp.Objects) != len(candidates) {
		return fmt.Errorf("server returned %d results for %d candidates", len(resp.Objects), len(candidates))
	}

	for i, result := range resp.Objects {
		if applyErr := s.applyUploadResult(ctx, class, pending[i], result); applyErr != nil {
			return applyErr
		}
	}

	return nil
}

func (s *clientSyncService) applyUploadResult(ctx context.Context, class string, local models.LocalObject, result models.SyncResult) error {
	log := logger.FromContext(ctx)

	switch result.Outcome {
	case models.OutcomeAccepted, models.OutcomeReplayed:
		return s.local.MarkSynced(ctx, class, local.LocalID, result.ServerID, result.Version)

	case models.OutcomeRejected:
		// The server's canonical copy overwrites ours and clears the
		// pending flag.
		if result.Canonical == nil {
			return fmt.Errorf("rejection for server id %d carried no canonical object", result.ServerID)
		}
		return s.local.ApplyRemote(ctx, *result.Canonical)

	case models.OutcomeDenied, models.OutcomeNotFound:
		log.Warn().
			Str("func", "clientSyncService.applyUploadResult").
			Str("object_class", class).
			Int64("local_id", local.LocalID).
			Str("outcome", string(result.Outcome)).
			Msg("upload was not applied by the server")
		return nil

	default:
		return fmt.Errorf("unknown sync outcome %q", result.Outcome)
	}
}

func (s *clientSyncService) downloadChanges(ctx context.Context, class string) error {
	log := logger.FromContext(ctx)

	for {
		watermark, err := s.local.Watermark(ctx, class)
		if err != nil {
			return fmt.Errorf("error loading watermark: %w", err)
		}

		resp, err := s.server.SyncDown(ctx, class, models.SyncDownRequest{
			ClientID:  s.clientID,
			Watermark: watermark,
		})
		if err != nil {
			return err
		}

		for _, object := range resp.Objects {
			if applyErr := s.local.ApplyRemote(ctx, object); applyErr != nil {
				return applyErr
			}
		}

		// A truncated page advances only to the last delivered version;
		// only a final page may jump to the committed snapshot.
		next := resp.CommittedVersion
		if resp.MoreObjects && len(resp.Objects) > 0 {
			next = resp.Objects[len(resp.Objects)-1].Version
		}
		if next > watermark {
			if err = s.local.SetWatermark(ctx, class, next); err != nil {
				return err
			}
		}

		log.Debug().
			Str("func", "clientSyncService.downloadChanges").
			Str("object_class", class).
			Int("objects", len(resp.Objects)).
			Int64("watermark", next).
			Bool("more_objects", resp.MoreObjects).
			Msg("download page applied")

		if !resp.MoreObjects {
			return nil
		}
	}
}

// recoverFullResync resets the class to a from-scratch state: every local
// object is flagged for re-upload and the watermark drops to zero, so the
// next cycle resubmits everything and re-downloads the full feed. Origin
// identities make the resubmission idempotent on the server.
func (s *clientSyncService) recoverFullResync(ctx context.Context, class string) error {
	logger.FromContext(ctx).Warn().
		Str("func", "clientSyncService.recoverFullResync").
		Str("object_class", class).
		Msg("server demanded a full resync")

	if err := s.local.MarkAllPending(ctx, class); err != nil {
		return err
	}
	return s.local.SetWatermark(ctx, class, 0)
}
