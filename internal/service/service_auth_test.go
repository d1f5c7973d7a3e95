package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/mock"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/models"
)

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "tucker-sync-test",
	TokenDuration: time.Hour,
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Empty(t, user.Password, "plaintext must not reach storage")
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
			user.UserID = 42
			return user, nil
		})

	svc := NewAuthService(repo, testAuthConfig, logger.Nop())

	created, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{name: "bad email", user: models.User{Email: "not-an-email", Password: "x"}},
		{name: "empty password", user: models.User{Email: "ada@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)

			svc := NewAuthService(repo, testAuthConfig, logger.Nop())

			_, err := svc.RegisterUser(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{UserID: 42, Email: "ada@example.com", PasswordHash: string(hash)}

	t.Run("correct password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)

		svc := NewAuthService(repo, testAuthConfig, logger.Nop())

		user, err := svc.Login(context.Background(), models.User{Email: "ada@example.com", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.UserID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)

		svc := NewAuthService(repo, testAuthConfig, logger.Nop())

		_, err := svc.Login(context.Background(), models.User{Email: "ada@example.com", Password: "wrong"})
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "ada@example.com").
			Return(models.User{}, store.ErrNoUserWasFound)

		svc := NewAuthService(repo, testAuthConfig, logger.Nop())

		_, err := svc.Login(context.Background(), models.User{Email: "ada@example.com", Password: "s3cret"})
		require.ErrorIs(t, err, store.ErrNoUserWasFound)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAuthConfig, logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAuthConfig, logger.Nop())

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_RegisterClient(t *testing.T) {
	const installUUID = "7b7f2dd0-52f5-4c34-9bf8-7b5ec516ed72"

	t.Run("valid uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().RegisterClient(gomock.Any(), int64(42), installUUID).
			Return(models.Client{ClientID: 7, UserID: 42, InstallUUID: installUUID}, nil)

		svc := NewAuthService(repo, testAuthConfig, logger.Nop())

		client, err := svc.RegisterClient(context.Background(), 42, installUUID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), client.ClientID)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)

		svc := NewAuthService(repo, testAuthConfig, logger.Nop())

		_, err := svc.RegisterClient(context.Background(), 42, "not-a-uuid")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_VerifyClient(t *testing.T) {
	tests := []struct {
		name    string
		client  models.Client
		findErr error
		wantErr error
	}{
		{name: "owned", client: models.Client{ClientID: 7, UserID: 42}},
		{name: "owned by another user", client: models.Client{ClientID: 7, UserID: 1000}, wantErr: ErrClientNotOwned},
		{name: "unknown client", findErr: store.ErrNoClientWasFound, wantErr: ErrClientNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			repo.EXPECT().FindClient(gomock.Any(), int64(7)).Return(tt.client, tt.findErr)

			svc := NewAuthService(repo, testAuthConfig, logger.Nop())

			err := svc.VerifyClient(context.Background(), 42, 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
