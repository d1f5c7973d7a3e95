package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/models"
)

// userRepository is the PostgreSQL-backed implementation of
// [UserRepository]. It persists accounts in the "users" table and client
// installation identities in the "clients" table.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the assigned UserID.
// A unique violation on the email column maps to [ErrEmailAlreadyExists].
func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := u.DB.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash).Scan(
		&created.UserID,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "userRepository.CreateUser").
				Str("email", user.Email).
				Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to create user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUserByEmail looks up an account by its unique email.
func (u *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := u.DB.QueryRowContext(ctx, findUserByEmail, email).Scan(
		&found.UserID,
		&found.Email,
		&found.PasswordHash,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to find user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// RegisterClient maps an install UUID to a client identity. The upsert keeps
// registration idempotent: the same UUID always yields the same ClientID,
// which in turn keeps origin identities stable across reinstalls that
// preserve local state.
func (u *userRepository) RegisterClient(ctx context.Context, userID int64, installUUID string) (models.Client, error) {
	log := logger.FromContext(ctx)

	var client models.Client
	err := u.DB.QueryRowContext(ctx, registerClient, userID, installUUID).Scan(
		&client.ClientID,
		&client.UserID,
		&client.InstallUUID,
		&client.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.RegisterClient").
			Int64("user_id", userID).
			Msg("failed to register client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return client, nil
}

// FindClient looks up a client identity by its server-assigned ID.
func (u *userRepository) FindClient(ctx context.Context, clientID int64) (models.Client, error) {
	log := logger.FromContext(ctx)

	var client models.Client
	err := u.DB.QueryRowContext(ctx, findClientByID, clientID).Scan(
		&client.ClientID,
		&client.UserID,
		&client.InstallUUID,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrNoClientWasFound
		}
		log.Err(err).
			Str("func", "userRepository.FindClient").
			Int64("client_id", clientID).
			Msg("failed to find client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return client, nil
}
