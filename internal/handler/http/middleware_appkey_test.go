package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/models"
)

func TestHandler_CheckAppKey(t *testing.T) {
	h := NewHandler(&service.Services{
		SyncService: &stubSyncService{},
		AuthService: &stubAuthService{},
	}, config.Auth{AppKeys: []string{"key-one", "key-two"}}, logger.Nop())

	router := h.Init()

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{name: "known key", key: "key-two", wantStatus: http.StatusBadRequest}, // passes the key check, fails on the empty body
		{name: "unknown key", key: "other", wantStatus: http.StatusForbidden},
		{name: "missing key", key: "", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(""))
			if tt.key != "" {
				req.Header.Set(appKeyHeader, tt.key)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusForbidden {
				var resp models.AuthResponse
				decodeBody(t, rec, &resp)
				assert.Equal(t, models.APIInvalidKey, resp.Error)
			}
		})
	}
}

func TestHandler_CheckAppKey_Disabled(t *testing.T) {
	// No configured keys: the check is a pass-through.
	sync := &stubSyncService{
		checkResyncFn: func(_ context.Context, _ int64) (models.ResyncState, error) {
			return models.ResyncNormal, nil
		},
	}
	h := newTestHandler(t, sync, &stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sync/check?watermark=0", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
