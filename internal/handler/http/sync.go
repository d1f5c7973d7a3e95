package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/internal/utils"
	"github.com/tuckersync/tucker-sync/models"
)

func (h *Handler) syncUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.SyncUpResponse{Error: models.APIAuthFail}, http.StatusUnauthorized)
		return
	}

	var req models.SyncUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.SyncUpResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	// The client identity in the body must belong to the authenticated user;
	// originClientId is trusted downstream.
	if err := h.services.AuthService.VerifyClient(ctx, userID, req.ClientID); err != nil {
		log.Err(err).Int64("client_id", req.ClientID).Msg("client verification failed")
		utils.WriteJSON(w, models.SyncUpResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	resp, err := h.services.SyncService.SyncUp(ctx, chi.URLParam(r, "class"), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrFullSyncRequired) {
			utils.WriteJSON(w, models.SyncUpResponse{Error: models.APIFullSyncRequired}, http.StatusOK)
			return
		}
		log.Err(err).Msg("upload session failed")
		utils.WriteJSON(w, models.SyncUpResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) syncDown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.SyncDownResponse{Error: models.APIAuthFail}, http.StatusUnauthorized)
		return
	}

	var req models.SyncDownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.SyncDownResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.SyncDown(ctx, chi.URLParam(r, "class"), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrFullSyncRequired) {
			utils.WriteJSON(w, models.SyncDownResponse{Error: models.APIFullSyncRequired}, http.StatusOK)
			return
		}
		log.Err(err).Msg("download page failed")
		utils.WriteJSON(w, models.SyncDownResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) baseData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SyncDownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.SyncDownResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.SyncService.BaseDataDown(ctx, chi.URLParam(r, "class"), req)
	if err != nil {
		if errors.Is(err, service.ErrFullSyncRequired) {
			utils.WriteJSON(w, models.SyncDownResponse{Error: models.APIFullSyncRequired}, http.StatusOK)
			return
		}
		log.Err(err).Msg("base data page failed")
		utils.WriteJSON(w, models.SyncDownResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) checkResync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	watermark, err := strconv.ParseInt(r.URL.Query().Get("watermark"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid watermark query parameter")
		utils.WriteJSON(w, models.CheckResyncResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	state, err := h.services.SyncService.CheckResync(ctx, watermark)
	if err != nil {
		log.Err(err).Msg("resync check failed")
		utils.WriteJSON(w, models.CheckResyncResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CheckResyncResponse{
		Error: models.APISuccess,
		State: state,
	}, http.StatusOK)
}
