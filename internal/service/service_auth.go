// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/internal/utils"
	"github.com/tuckersync/tucker-sync/models"
)

type authService struct {
	repository store.UserRepository
	auth       config.Auth
	logger     *logger.Logger
}

// NewAuthService creates the auth glue over the user repository.
func NewAuthService(repository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		repository: repository,
		auth:       cfg,
		logger:     logger,
	}
}

// RegisterUser implements [AuthService]. The plaintext password is hashed
// with bcrypt and discarded before the user reaches storage.
func (s *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(user); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = ""
	user.PasswordHash = string(hash)

	created, err := s.repository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	log.Info().
		Str("func", "authService.RegisterUser").
		Int64("user_id", created.UserID).
		Msg("user registered")

	return created, nil
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := validateCredentials(user); err != nil {
		return models.User{}, err
	}

	found, err := s.repository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(user.Password)); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	found.PasswordHash = ""
	return found, nil
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.auth.TokenIssuer, user.UserID, s.auth.TokenDuration, s.auth.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error creating token: %w", err)
	}
	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.auth.TokenSignKey, s.auth.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

// RegisterClient implements [AuthService].
func (s *authService) RegisterClient(ctx context.Context, userID int64, installUUID string) (models.Client, error) {
	if _, err := uuid.Parse(installUUID); err != nil {
		return models.Client{}, fmt.Errorf("%w: install UUID: %w", ErrInvalidDataProvided, err)
	}

	client, err := s.repository.RegisterClient(ctx, userID, installUUID)
	if err != nil {
		return models.Client{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "authService.RegisterClient").
		Int64("user_id", userID).
		Int64("client_id", client.ClientID).
		Msg("client registered")

	return client, nil
}

// VerifyClient implements [AuthService].
func (s *authService) VerifyClient(ctx context.Context, userID, clientID int64) error {
	client, err := s.repository.FindClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNoClientWasFound) {
			return ErrClientNotOwned
		}
		return err
	}
	if client.UserID != userID {
		return ErrClientNotOwned
	}
	return nil
}

func validateCredentials(user models.User) error {
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return fmt.Errorf("%w: email: %w", ErrInvalidDataProvided, err)
	}
	if user.Password == "" {
		return fmt.Errorf("%w: empty password", ErrInvalidDataProvided)
	}
	return nil
}
