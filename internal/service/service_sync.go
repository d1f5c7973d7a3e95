// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/schema"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/models"
)

// syncService is the concrete implementation of [SyncService].
//
// One upload batch maps to one store session: a single transaction holding
// the counter lock, with one session version stamped on every accepted
// write. Downloads never join a session; they are bounded by the committed
// snapshot instead, so a session still in flight is invisible to them.
type syncService struct {
	repository store.SyncRepository
	registry   *schema.Registry

	policy     ConflictPolicy
	batchLimit uint64

	logger *logger.Logger
}

// NewSyncService constructs the engine with the configured conflict policy
// and download batch ceiling.
func NewSyncService(repository store.SyncRepository, registry *schema.Registry, cfg config.Sync, logger *logger.Logger) (SyncService, error) {
	policy, err := ParseConflictPolicy(cfg.ConflictPolicy)
	if err != nil {
		return nil, err
	}

	return &syncService{
		repository: repository,
		registry:   registry,
		policy:     policy,
		batchLimit: cfg.DownloadBatchLimit,
		logger:     logger,
	}, nil
}

// SyncUp implements [SyncService].
//
// The request is validated in full before the session opens: malformed
// input, an unknown class, a schema-violating payload or a watermark ahead
// of the counter abort the batch with no effect. After that point every
// candidate is processed independently and per-object outcomes never abort
// the batch; the session commits exactly once at the end.
func (s *syncService) SyncUp(ctx context.Context, objectClass string, userID int64, req models.SyncUpRequest) (models.SyncUpResponse, error) {
	log := logger.FromContext(ctx)

	class, err := s.registry.Lookup(objectClass)
	if err != nil {
		return models.SyncUpResponse{}, err
	}
	if req.ClientID <= 0 {
		return models.SyncUpResponse{}, ErrNoClientID
	}
	if req.Length != len(req.Objects) {
		log.Warn().
			Str("func", "syncService.SyncUp").
			Int("declared", req.Length).
			Int("actual", len(req.Objects)).
			Msg("batch length mismatch")
		return models.SyncUpResponse{}, ErrBatchLengthMismatch
	}
	for _, candidate := range req.Objects {
		if err = class.ValidatePayload(candidate.Payload); err != nil {
			return models.SyncUpResponse{}, err
		}
	}

	if err = s.guardWatermark(ctx, req.Watermark); err != nil {
		return models.SyncUpResponse{}, err
	}

	resp, err := s.runUploadSession(ctx, objectClass, userID, req)
	if errors.Is(err, store.ErrDuplicateOrigin) {
		// A create raced another session's insert of the same origin
		// identity. On the retry the lookup finds the committed row and
		// the candidate resolves to a replay.
		log.Warn().
			Str("func", "syncService.SyncUp").
			Str("object_class", objectClass).
			Msg("origin identity race, retrying upload session")
		resp, err = s.runUploadSession(ctx, objectClass, userID, req)
	}

	return resp, err
}

func (s *syncService) runUploadSession(ctx context.Context, objectClass string, userID int64, req models.SyncUpRequest) (models.SyncUpResponse, error) {
	log := logger.FromContext(ctx)

	session, err := s.repository.BeginSession(ctx)
	if err != nil {
		return models.SyncUpResponse{}, fmt.Errorf("error opening upload session: %w", err)
	}
	defer session.Rollback()

	results := make([]models.SyncResult, 0, len(req.Objects))
	for _, candidate := range req.Objects {
		result, processErr := s.processCandidate(ctx, session, objectClass, userID, req.ClientID, candidate)
		if processErr != nil {
			log.Err(processErr).
				Str("func", "syncService.runUploadSession").
				Str("object_class", objectClass).
				Int64("server_id", candidate.ServerID).
				Msg("upload session aborted")
			return models.SyncUpResponse{}, processErr
		}
		results = append(results, result)
	}

	if err = session.Commit(ctx); err != nil {
		return models.SyncUpResponse{}, fmt.Errorf("error committing upload session: %w", err)
	}

	log.Debug().
		Str("func", "syncService.runUploadSession").
		Str("object_class", objectClass).
		Int64("session_version", session.Version()).
		Int("objects", len(results)).
		Msg("upload session committed")

	return models.SyncUpResponse{
		Error:   models.APISuccess,
		Objects: results,
		Length:  len(results),
	}, nil
}

// processCandidate routes one candidate through the create or update path.
// A returned error is a storage failure and aborts the session; every
// engine-level decision comes back as a result.
func (s *syncService) processCandidate(ctx context.Context, session store.SyncSession, objectClass string, userID, clientID int64, candidate models.SyncCandidate) (models.SyncResult, error) {
	if candidate.ServerID == 0 {
		return s.processCreate(ctx, session, objectClass, userID, clientID, candidate)
	}
	return s.processUpdate(ctx, session, objectClass, userID, clientID, candidate)
}

// processCreate deduplicates by origin identity. A resent create whose first
// attempt already committed replays the original identity and version; the
// unique index is the sole source of truth and no heuristic matching is
// done.
func (s *syncService) processCreate(ctx context.Context, session store.SyncSession, objectClass string, userID, clientID int64, candidate models.SyncCandidate) (models.SyncResult, error) {
	existing, err := session.FindByOrigin(ctx, objectClass, clientID, candidate.OriginClientLocalID)
	if err == nil {
		return models.SyncResult{
			ServerID:            existing.ServerID,
			OriginClientLocalID: candidate.OriginClientLocalID,
			Version:             existing.Version,
			Outcome:             models.OutcomeReplayed,
			Canonical:           &existing,
		}, nil
	}
	if !errors.Is(err, store.ErrObjectNotFound) {
		return models.SyncResult{}, err
	}

	inserted, err := session.InsertObject(ctx, models.SyncObject{
		ObjectClass:           objectClass,
		OriginClientID:        clientID,
		OriginClientLocalID:   candidate.OriginClientLocalID,
		LastUpdatedByClientID: clientID,
		OwnerUserID:           userID,
		Version:               session.Version(),
		Deleted:               candidate.Deleted,
		Payload:               candidate.Payload,
	})
	if err != nil {
		return models.SyncResult{}, err
	}

	return models.SyncResult{
		ServerID:            inserted.ServerID,
		OriginClientLocalID: candidate.OriginClientLocalID,
		Version:             inserted.Version,
		Outcome:             models.OutcomeAccepted,
	}, nil
}

// processUpdate applies the conflict policy to an update of an existing
// object. Owner mismatch is a distinct outcome from a version conflict and
// deliberately echoes no payload.
func (s *syncService) processUpdate(ctx context.Context, session store.SyncSession, objectClass string, userID, clientID int64, candidate models.SyncCandidate) (models.SyncResult, error) {
	stored, err := session.FindByServerID(ctx, objectClass, candidate.ServerID)
	if err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			return models.SyncResult{
				ServerID: candidate.ServerID,
				Outcome:  models.OutcomeNotFound,
			}, nil
		}
		return models.SyncResult{}, err
	}

	if stored.OwnerUserID != userID {
		return models.SyncResult{
			ServerID: candidate.ServerID,
			Outcome:  models.OutcomeDenied,
		}, nil
	}

	outcome := s.policy.Resolve(stored, candidate.PriorVersion, session.Version())
	if !outcome.Accepted {
		return models.SyncResult{
			ServerID:  stored.ServerID,
			Version:   stored.Version,
			Outcome:   models.OutcomeRejected,
			Canonical: &outcome.Canonical,
		}, nil
	}

	accepted := stored
	accepted.Payload = candidate.Payload
	accepted.Deleted = candidate.Deleted
	accepted.Version = session.Version()
	accepted.LastUpdatedByClientID = clientID

	if err = session.ApplyUpdate(ctx, accepted); err != nil {
		return models.SyncResult{}, err
	}

	return models.SyncResult{
		ServerID: accepted.ServerID,
		Version:  accepted.Version,
		Outcome:  models.OutcomeAccepted,
	}, nil
}

// SyncDown implements [SyncService].
func (s *syncService) SyncDown(ctx context.Context, objectClass string, userID int64, req models.SyncDownRequest) (models.SyncDownResponse, error) {
	if _, err := s.registry.Lookup(objectClass); err != nil {
		return models.SyncDownResponse{}, err
	}

	return s.downloadPage(ctx, objectClass, &userID, req.Watermark)
}

// BaseDataDown implements [SyncService]. Only classes registered shareable
// are servable without a user predicate.
func (s *syncService) BaseDataDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error) {
	if _, err := s.registry.LookupShareable(objectClass); err != nil {
		return models.SyncDownResponse{}, err
	}

	return s.downloadPage(ctx, objectClass, nil, req.Watermark)
}

// downloadPage computes one bounded page of the change feed. The snapshot
// bound is read first and caps the selection, so a concurrently running
// uncommitted session (whose version is above the bound) can never leak
// into the page.
func (s *syncService) downloadPage(ctx context.Context, objectClass string, ownerUserID *int64, watermark int64) (models.SyncDownResponse, error) {
	log := logger.FromContext(ctx)

	bound, err := s.repository.SnapshotBound(ctx)
	if err != nil {
		return models.SyncDownResponse{}, fmt.Errorf("error reading snapshot bound: %w", err)
	}
	if watermark > bound {
		return models.SyncDownResponse{}, ErrFullSyncRequired
	}

	// One extra row detects truncation without a second count query.
	objects, err := s.repository.SelectChanged(ctx, store.ChangeQuery{
		ObjectClass:  objectClass,
		OwnerUserID:  ownerUserID,
		AfterVersion: watermark,
		MaxVersion:   bound,
		Limit:        s.batchLimit + 1,
	})
	if err != nil {
		return models.SyncDownResponse{}, fmt.Errorf("error selecting changed objects: %w", err)
	}

	// The watermark is the protocol's only cursor, so a page must never end
	// inside a version group: the client advances past the whole version and
	// a split group's tail would become unreachable. A truncated page is cut
	// back to the last complete group instead.
	more := uint64(len(objects)) > s.batchLimit
	if more {
		page := truncateAtVersionBoundary(objects, s.batchLimit)
		if len(page) == 0 {
			// One upload session larger than the page limit produced a
			// version group that cannot fit. Deliver the group whole; the
			// page overshoots the limit rather than lose its tail.
			page, err = s.repository.SelectChanged(ctx, store.ChangeQuery{
				ObjectClass:  objectClass,
				OwnerUserID:  ownerUserID,
				AfterVersion: objects[0].Version - 1,
				MaxVersion:   objects[0].Version,
			})
			if err != nil {
				return models.SyncDownResponse{}, fmt.Errorf("error selecting version group: %w", err)
			}
		}
		objects = page
	}

	log.Debug().
		Str("func", "syncService.downloadPage").
		Str("object_class", objectClass).
		Int64("watermark", watermark).
		Int64("committed_version", bound).
		Int("objects", len(objects)).
		Bool("more_objects", more).
		Msg("download page computed")

	return models.SyncDownResponse{
		Error:            models.APISuccess,
		CommittedVersion: bound,
		MoreObjects:      more,
		Objects:          objects,
		Length:           len(objects),
	}, nil
}

// truncateAtVersionBoundary returns the longest prefix of objects holding at
// most limit entries that ends on a complete version group. Objects must be
// ordered by version and longer than limit. An empty result means the group
// containing objects[limit] starts at index zero.
func truncateAtVersionBoundary(objects []models.SyncObject, limit uint64) []models.SyncObject {
	overflow := objects[limit].Version

	cut := limit
	for cut > 0 && objects[cut-1].Version == overflow {
		cut--
	}

	return objects[:cut]
}

// CheckResync implements [SyncService].
func (s *syncService) CheckResync(ctx context.Context, watermark int64) (models.ResyncState, error) {
	if err := s.guardWatermark(ctx, watermark); err != nil {
		if errors.Is(err, ErrFullSyncRequired) {
			return models.ResyncRequired, nil
		}
		return "", err
	}

	return models.ResyncNormal, nil
}

// guardWatermark is the resync pre-check: a watermark ahead of the
// committed counter means the client synced against a counter this server
// no longer has (stale restore, rebuilt database) and must resend
// everything.
func (s *syncService) guardWatermark(ctx context.Context, watermark int64) error {
	bound, err := s.repository.SnapshotBound(ctx)
	if err != nil {
		return fmt.Errorf("error reading snapshot bound: %w", err)
	}

	if watermark > bound {
		logger.FromContext(ctx).Warn().
			Str("func", "syncService.guardWatermark").
			Int64("watermark", watermark).
			Int64("committed_version", bound).
			Msg("client watermark is ahead of the counter, full resync required")
		return ErrFullSyncRequired
	}

	return nil
}
