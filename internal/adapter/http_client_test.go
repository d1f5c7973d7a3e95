package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuckersync/tucker-sync/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	return NewHTTPServerAdapter(HTTPClientConfig{
		BaseURL: serverURL,
		AppKey:  "test-app-key",
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestHTTPServerAdapter_Login_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/login", r.URL.Path)
		assert.Equal(t, "test-app-key", r.Header.Get("X-App-Key"))

		writeJSON(t, w, http.StatusOK, models.AuthResponse{UserID: 42, Token: "issued-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Email: "ann@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "issued-token", a.Token())
}

func TestHTTPServerAdapter_Login_AuthFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.AuthResponse{Error: models.APIAuthFail})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Email: "ann@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_RegisterClient_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/register", r.URL.Path)
		assert.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))

		var req models.ClientRegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "9be4f2a1-1111-4222-8333-444455556666", req.InstallUUID)

		writeJSON(t, w, http.StatusOK, models.ClientRegisterResponse{ClientID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	got, err := a.RegisterClient(context.Background(), "9be4f2a1-1111-4222-8333-444455556666")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ClientID)
	assert.Equal(t, "9be4f2a1-1111-4222-8333-444455556666", got.InstallUUID)
}

func TestHTTPServerAdapter_SyncUp_SetsLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/contact/up", r.URL.Path)

		var req models.SyncUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Length)

		writeJSON(t, w, http.StatusOK, models.SyncUpResponse{
			Objects: []models.SyncResult{
				{ServerID: 1, Version: 5, Outcome: models.OutcomeAccepted},
				{ServerID: 2, Version: 5, Outcome: models.OutcomeAccepted},
			},
			Length: 2,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	resp, err := a.SyncUp(context.Background(), "contact", models.SyncUpRequest{
		ClientID: 7,
		Objects:  []models.SyncCandidate{{OriginClientLocalID: 1}, {OriginClientLocalID: 2}},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Objects, 2)
}

func TestHTTPServerAdapter_SyncUp_FullResyncInBand(t *testing.T) {
	// The server reports a stale watermark as an in-band code on a 200.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SyncUpResponse{Error: models.APIFullSyncRequired})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SyncUp(context.Background(), "contact", models.SyncUpRequest{ClientID: 7, Watermark: 99})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFullSyncRequired)
}

func TestHTTPServerAdapter_SyncDown_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/contact/down", r.URL.Path)

		writeJSON(t, w, http.StatusOK, models.SyncDownResponse{
			CommittedVersion: 12,
			MoreObjects:      true,
			Objects:          []models.SyncObject{{ServerID: 3, ObjectClass: "contact", Version: 11}},
			Length:           1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	resp, err := a.SyncDown(context.Background(), "contact", models.SyncDownRequest{ClientID: 7, Watermark: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.CommittedVersion)
	assert.True(t, resp.MoreObjects)
	require.Len(t, resp.Objects, 1)
	assert.Equal(t, int64(3), resp.Objects[0].ServerID)
}

func TestHTTPServerAdapter_BaseDataDown_NoBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/category/base", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.SyncDownResponse{CommittedVersion: 4})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	resp, err := a.BaseDataDown(context.Background(), "category", models.SyncDownRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.CommittedVersion)
}

func TestHTTPServerAdapter_CheckResync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/check", r.URL.Path)
		assert.Equal(t, "55", r.URL.Query().Get("watermark"))

		writeJSON(t, w, http.StatusOK, models.CheckResyncResponse{State: models.ResyncRequired})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	state, err := a.CheckResync(context.Background(), 55)

	require.NoError(t, err)
	assert.Equal(t, models.ResyncRequired, state)
}

func TestHTTPServerAdapter_InvalidAppKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.SyncDownResponse{Error: models.APIInvalidKey})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SyncDown(context.Background(), "contact", models.SyncDownRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppKey)
}

func TestHTTPServerAdapter_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SyncDown(context.Background(), "contact", models.SyncDownRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response body")
}
