package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/models"
)

// stubAuthService implements service.AuthService for unit tests. Each method
// field can be overridden per test case; unset methods accept everything.
type stubAuthService struct {
	registerUserFn   func(ctx context.Context, user models.User) (models.User, error)
	loginFn          func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	registerClientFn func(ctx context.Context, userID int64, installUUID string) (models.Client, error)
	verifyClientFn   func(ctx context.Context, userID, clientID int64) error
}

func (m *stubAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *stubAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "stub-token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: 42}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *stubAuthService) RegisterClient(ctx context.Context, userID int64, installUUID string) (models.Client, error) {
	return m.registerClientFn(ctx, userID, installUUID)
}

func (m *stubAuthService) VerifyClient(ctx context.Context, userID, clientID int64) error {
	if m.verifyClientFn == nil {
		return nil
	}
	return m.verifyClientFn(ctx, userID, clientID)
}

// stubSyncService implements service.SyncService for unit tests.
type stubSyncService struct {
	syncUpFn       func(ctx context.Context, objectClass string, userID int64, req models.SyncUpRequest) (models.SyncUpResponse, error)
	syncDownFn     func(ctx context.Context, objectClass string, userID int64, req models.SyncDownRequest) (models.SyncDownResponse, error)
	baseDataDownFn func(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error)
	checkResyncFn  func(ctx context.Context, watermark int64) (models.ResyncState, error)
}

func (m *stubSyncService) SyncUp(ctx context.Context, objectClass string, userID int64, req models.SyncUpRequest) (models.SyncUpResponse, error) {
	return m.syncUpFn(ctx, objectClass, userID, req)
}

func (m *stubSyncService) SyncDown(ctx context.Context, objectClass string, userID int64, req models.SyncDownRequest) (models.SyncDownResponse, error) {
	return m.syncDownFn(ctx, objectClass, userID, req)
}

func (m *stubSyncService) BaseDataDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error) {
	return m.baseDataDownFn(ctx, objectClass, req)
}

func (m *stubSyncService) CheckResync(ctx context.Context, watermark int64) (models.ResyncState, error) {
	return m.checkResyncFn(ctx, watermark)
}

// newTestHandler builds a Handler over the given stubs with no app-key
// requirement.
func newTestHandler(t *testing.T, sync service.SyncService, auth service.AuthService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		SyncService: sync,
		AuthService: auth,
	}, config.Auth{}, logger.Nop())
}

// jsonBody serialises v to a request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeBody parses a JSON response recorder body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

// doRequest routes one request through the full middleware chain.
func doRequest(t *testing.T, h *Handler, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
