package http

import (
	"encoding/json"
	"net/http"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/utils"
	"github.com/tuckersync/tucker-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.AuthResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		utils.WriteJSON(w, models.AuthResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.AuthResponse{Error: models.APIUnknown}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Error:  models.APISuccess,
		UserID: registeredUser.UserID,
		Token:  token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.AuthResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Msg("user login failed")
		utils.WriteJSON(w, models.AuthResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.AuthResponse{Error: models.APIUnknown}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Error:  models.APISuccess,
		UserID: foundUser.UserID,
		Token:  token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) registerClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ClientRegisterResponse{Error: models.APIAuthFail}, http.StatusUnauthorized)
		return
	}

	var req models.ClientRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ClientRegisterResponse{Error: models.APIMalformedRequest}, http.StatusBadRequest)
		return
	}

	client, err := h.services.AuthService.RegisterClient(ctx, userID, req.InstallUUID)
	if err != nil {
		log.Err(err).Msg("client registration failed")
		utils.WriteJSON(w, models.ClientRegisterResponse{Error: codeFromError(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ClientRegisterResponse{
		Error:    models.APISuccess,
		ClientID: client.ClientID,
	}, http.StatusOK)
}
