package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuckersync/tucker-sync/internal/schema"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/models"
)

func TestHandler_SyncUp(t *testing.T) {
	sync := &stubSyncService{
		syncUpFn: func(_ context.Context, objectClass string, userID int64, req models.SyncUpRequest) (models.SyncUpResponse, error) {
			assert.Equal(t, "contact", objectClass)
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(7), req.ClientID)
			return models.SyncUpResponse{
				Error:   models.APISuccess,
				Objects: []models.SyncResult{{ServerID: 1, Version: 10, Outcome: models.OutcomeAccepted}},
				Length:  1,
			}, nil
		},
	}
	h := newTestHandler(t, sync, &stubAuthService{})

	body := jsonBody(t, models.SyncUpRequest{
		ClientID:  7,
		Watermark: 5,
		Objects:   []models.SyncCandidate{{OriginClientLocalID: 1}},
		Length:    1,
	})
	rec := doRequest(t, h, http.MethodPost, "/api/sync/contact/up", body, "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncUpResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APISuccess, resp.Error)
	require.Len(t, resp.Objects, 1)
	assert.Equal(t, models.OutcomeAccepted, resp.Objects[0].Outcome)
}

func TestHandler_SyncUp_ClientNotOwned(t *testing.T) {
	auth := &stubAuthService{
		verifyClientFn: func(_ context.Context, _, _ int64) error {
			return service.ErrClientNotOwned
		},
	}
	h := newTestHandler(t, &stubSyncService{}, auth)

	body := jsonBody(t, models.SyncUpRequest{ClientID: 999})
	rec := doRequest(t, h, http.MethodPost, "/api/sync/contact/up", body, "valid-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp models.SyncUpResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APIAuthFail, resp.Error)
}

func TestHandler_SyncUp_FullResyncInBand(t *testing.T) {
	sync := &stubSyncService{
		syncUpFn: func(_ context.Context, _ string, _ int64, _ models.SyncUpRequest) (models.SyncUpResponse, error) {
			return models.SyncUpResponse{}, service.ErrFullSyncRequired
		},
	}
	h := newTestHandler(t, sync, &stubAuthService{})

	body := jsonBody(t, models.SyncUpRequest{ClientID: 7, Watermark: 1000})
	rec := doRequest(t, h, http.MethodPost, "/api/sync/contact/up", body, "valid-token")

	// Protocol state travels in-band over an ordinary 200.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncUpResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APIFullSyncRequired, resp.Error)
	assert.Empty(t, resp.Objects)
}

func TestHandler_SyncUp_UnknownClass(t *testing.T) {
	sync := &stubSyncService{
		syncUpFn: func(_ context.Context, _ string, _ int64, _ models.SyncUpRequest) (models.SyncUpResponse, error) {
			return models.SyncUpResponse{}, schema.ErrUnknownClass
		},
	}
	h := newTestHandler(t, sync, &stubAuthService{})

	body := jsonBody(t, models.SyncUpRequest{ClientID: 7})
	rec := doRequest(t, h, http.MethodPost, "/api/sync/nope/up", body, "valid-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.SyncUpResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APIMalformedRequest, resp.Error)
}

func TestHandler_SyncDown(t *testing.T) {
	sync := &stubSyncService{
		syncDownFn: func(_ context.Context, objectClass string, userID int64, req models.SyncDownRequest) (models.SyncDownResponse, error) {
			assert.Equal(t, "contact", objectClass)
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), req.Watermark)
			return models.SyncDownResponse{
				Error:            models.APISuccess,
				CommittedVersion: 90,
				MoreObjects:      true,
				Objects:          []models.SyncObject{{ServerID: 1, Version: 10}},
				Length:           1,
			}, nil
		},
	}
	h := newTestHandler(t, sync, &stubAuthService{})

	body := jsonBody(t, models.SyncDownRequest{ClientID: 7, Watermark: 5})
	rec := doRequest(t, h, http.MethodPost, "/api/sync/contact/down", body, "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncDownResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APISuccess, resp.Error)
	assert.True(t, resp.MoreObjects)
	assert.Equal(t, int64(90), resp.CommittedVersion)
}

func TestHandler_BaseData_NoAuthRequired(t *testing.T) {
	sync := &stubSyncService{
		baseDataDownFn: func(_ context.Context, objectClass string, _ models.SyncDownRequest) (models.SyncDownResponse, error) {
			assert.Equal(t, "category", objectClass)
			return models.SyncDownResponse{Error: models.APISuccess}, nil
		},
	}
	h := newTestHandler(t, sync, &stubAuthService{})

	// No bearer token: base data serves anonymously.
	rec := doRequest(t, h, http.MethodPost, "/api/sync/category/base", `{"watermark":0}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CheckResync(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		state      models.ResyncState
		wantStatus int
		wantState  models.ResyncState
	}{
		{
			name:       "normal",
			target:     "/api/sync/check?watermark=10",
			state:      models.ResyncNormal,
			wantStatus: http.StatusOK,
			wantState:  models.ResyncNormal,
		},
		{
			name:       "resync required",
			target:     "/api/sync/check?watermark=1000",
			state:      models.ResyncRequired,
			wantStatus: http.StatusOK,
			wantState:  models.ResyncRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := &stubSyncService{
				checkResyncFn: func(_ context.Context, _ int64) (models.ResyncState, error) {
					return tt.state, nil
				},
			}
			h := newTestHandler(t, sync, &stubAuthService{})

			rec := doRequest(t, h, http.MethodGet, tt.target, "", "")

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp models.CheckResyncResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantState, resp.State)
		})
	}
}

func TestHandler_CheckResync_MissingWatermark(t *testing.T) {
	h := newTestHandler(t, &stubSyncService{}, &stubAuthService{})

	rec := doRequest(t, h, http.MethodGet, "/api/sync/check", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
