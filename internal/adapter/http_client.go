package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tuckersync/tucker-sync/models"
)

type HTTPClientConfig struct {
	BaseURL string
	AppKey  string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	if cfg.AppKey != "" {
		cli.SetHeader("X-App-Key", cfg.AppKey)
	}

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	var auth models.AuthResponse
	if err = decodeResponse(resp, &auth); err != nil {
		return models.User{}, err
	}
	if err = mapProtocolError(resp, auth.Error); err != nil {
		return models.User{}, err
	}

	h.SetToken(auth.Token)
	return models.User{UserID: auth.UserID, Email: user.Email}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	var auth models.AuthResponse
	if err = decodeResponse(resp, &auth); err != nil {
		return models.User{}, err
	}
	if err = mapProtocolError(resp, auth.Error); err != nil {
		return models.User{}, err
	}

	h.SetToken(auth.Token)
	return models.User{UserID: auth.UserID, Email: user.Email}, nil
}

func (h *httpServerAdapter) RegisterClient(ctx context.Context, installUUID string) (models.Client, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(models.ClientRegisterRequest{InstallUUID: installUUID}).
		Post("/api/client/register")
	if err != nil {
		return models.Client{}, fmt.Errorf("client register request: %w", err)
	}

	var reg models.ClientRegisterResponse
	if err = decodeResponse(resp, &reg); err != nil {
		return models.Client{}, err
	}
	if err = mapProtocolError(resp, reg.Error); err != nil {
		return models.Client{}, err
	}

	return models.Client{ClientID: reg.ClientID, InstallUUID: installUUID}, nil
}

func (h *httpServerAdapter) SyncUp(ctx context.Context, objectClass string, req models.SyncUpRequest) (models.SyncUpResponse, error) {
	req.Length = len(req.Objects)

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/sync/" + objectClass + "/up")
	if err != nil {
		return models.SyncUpResponse{}, fmt.Errorf("sync up request: %w", err)
	}

	var up models.SyncUpResponse
	if err = decodeResponse(resp, &up); err != nil {
		return models.SyncUpResponse{}, err
	}
	if err = mapProtocolError(resp, up.Error); err != nil {
		return models.SyncUpResponse{}, err
	}

	return up, nil
}

func (h *httpServerAdapter) SyncDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/sync/" + objectClass + "/down")
	if err != nil {
		return models.SyncDownResponse{}, fmt.Errorf("sync down request: %w", err)
	}

	var down models.SyncDownResponse
	if err = decodeResponse(resp, &down); err != nil {
		return models.SyncDownResponse{}, err
	}
	if err = mapProtocolError(resp, down.Error); err != nil {
		return models.SyncDownResponse{}, err
	}

	return down, nil
}

func (h *httpServerAdapter) BaseDataDown(ctx context.Context, objectClass string, req models.SyncDownRequest) (models.SyncDownResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/sync/" + objectClass + "/base")
	if err != nil {
		return models.SyncDownResponse{}, fmt.Errorf("base data request: %w", err)
	}

	var down models.SyncDownResponse
	if err = decodeResponse(resp, &down); err != nil {
		return models.SyncDownResponse{}, err
	}
	if err = mapProtocolError(resp, down.Error); err != nil {
		return models.SyncDownResponse{}, err
	}

	return down, nil
}

func (h *httpServerAdapter) CheckResync(ctx context.Context, watermark int64) (models.ResyncState, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("watermark", fmt.Sprintf("%d", watermark)).
		Get("/api/sync/check")
	if err != nil {
		return "", fmt.Errorf("resync check request: %w", err)
	}

	var check models.CheckResyncResponse
	if err = decodeResponse(resp, &check); err != nil {
		return "", err
	}
	if err = mapProtocolError(resp, check.Error); err != nil {
		return "", err
	}

	return check.State, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeResponse(resp *resty.Response, out any) error {
	if len(resp.Body()) == 0 {
		return fmt.Errorf("http %d: empty response body", resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response (http %d): %w", resp.StatusCode(), err)
	}
	return nil
}

// mapProtocolError converts the in-band code plus HTTP status to a sentinel
// error. A zero code with a 2xx status is success.
func mapProtocolError(resp *resty.Response, code models.APIErrorCode) error {
	switch code {
	case models.APISuccess:
		if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
			return nil
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	case models.APIFullSyncRequired:
		return ErrFullSyncRequired
	case models.APIAuthFail:
		return ErrUnauthorized
	case models.APIInvalidKey:
		return ErrInvalidAppKey
	case models.APIMalformedRequest:
		return ErrMalformedRequest
	default:
		return fmt.Errorf("server error code %d (http %d)", code, resp.StatusCode())
	}
}
