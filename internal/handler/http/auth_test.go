package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/models"
)

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, user models.User) (models.User, error)
		wantStatus int
		wantCode   models.APIErrorCode
	}{
		{
			name: "success",
			body: `{"email":"ada@example.com","password":"s3cret"}`,
			registerFn: func(_ context.Context, user models.User) (models.User, error) {
				user.UserID = 42
				return user, nil
			},
			wantStatus: http.StatusOK,
			wantCode:   models.APISuccess,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   models.APIMalformedRequest,
		},
		{
			name: "email taken",
			body: `{"email":"ada@example.com","password":"s3cret"}`,
			registerFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantCode:   models.APIMalformedRequest,
		},
		{
			name: "invalid data",
			body: `{"email":"nope","password":""}`,
			registerFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   models.APIMalformedRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &stubSyncService{}, &stubAuthService{registerUserFn: tt.registerFn})

			rec := doRequest(t, h, http.MethodPost, "/api/user/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp models.AuthResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantCode, resp.Error)
			if tt.wantCode == models.APISuccess {
				assert.Equal(t, int64(42), resp.UserID)
				assert.NotEmpty(t, resp.Token)
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		loginFn    func(ctx context.Context, user models.User) (models.User, error)
		wantStatus int
		wantCode   models.APIErrorCode
	}{
		{
			name: "success",
			loginFn: func(_ context.Context, user models.User) (models.User, error) {
				user.UserID = 42
				return user, nil
			},
			wantStatus: http.StatusOK,
			wantCode:   models.APISuccess,
		},
		{
			name: "wrong password",
			loginFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrWrongPassword
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   models.APIAuthFail,
		},
		{
			name: "unknown user",
			loginFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, store.ErrNoUserWasFound
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   models.APIAuthFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &stubSyncService{}, &stubAuthService{loginFn: tt.loginFn})

			rec := doRequest(t, h, http.MethodPost, "/api/user/login",
				`{"email":"ada@example.com","password":"s3cret"}`, "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp models.AuthResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantCode, resp.Error)
		})
	}
}

func TestHandler_RegisterClient(t *testing.T) {
	auth := &stubAuthService{
		registerClientFn: func(_ context.Context, userID int64, installUUID string) (models.Client, error) {
			assert.Equal(t, int64(42), userID)
			return models.Client{ClientID: 7, UserID: userID, InstallUUID: installUUID}, nil
		},
	}
	h := newTestHandler(t, &stubSyncService{}, auth)

	rec := doRequest(t, h, http.MethodPost, "/api/client/register",
		`{"install_uuid":"7b7f2dd0-52f5-4c34-9bf8-7b5ec516ed72"}`, "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ClientRegisterResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APISuccess, resp.Error)
	assert.Equal(t, int64(7), resp.ClientID)
}

func TestHandler_RegisterClient_Unauthorized(t *testing.T) {
	h := newTestHandler(t, &stubSyncService{}, &stubAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	})

	rec := doRequest(t, h, http.MethodPost, "/api/client/register",
		`{"install_uuid":"7b7f2dd0-52f5-4c34-9bf8-7b5ec516ed72"}`, "expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Auth_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &stubSyncService{}, &stubAuthService{})

	rec := doRequest(t, h, http.MethodPost, "/api/client/register", `{}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.AuthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, models.APIAuthFail, resp.Error)
}
