package impl

import (
	"context"
	"testing"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixture struct {
	service usecase.SessionUsecase
	store   *fakeStore
	tokens  *fakeTokenService
}

func createTestSessionService(t *testing.T) *sessionServiceFixture {
	t.Helper()

	store := newFakeStore()
	tokens := &fakeTokenService{}

	service := NewSessionService(SessionServiceParams{
		TxManager:    &fakeTxManager{store: store},
		UserRepo:     &fakeUserRepo{store: store},
		Hasher:       fakeHasher{},
		TokenService: tokens,
		Logger:       testLogger(),
	})

	return &sessionServiceFixture{service: service, store: store, tokens: tokens}
}

func (f *sessionServiceFixture) seedUser(username, email, password string) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "hashed:" + password,
	}
	f.store.users[user.ID] = user

	return user
}

func TestSessionService_Login_WithUsername(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, seeded.ID, output.User.ID)

	stored := fx.store.users[seeded.ID]
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, output.RefreshToken, *stored.RefreshToken)
}

func TestSessionService_Login_WithEmail(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("bob", "bob@example.com", "s3cret")

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "bob@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, output.User.ID)
}

func TestSessionService_Login_UnknownAccount(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "nobody",
		Password: "s3cret",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// A failed attempt must not establish a session.
	assert.Nil(t, fx.store.users[seeded.ID].RefreshToken)
}

func TestSessionService_Login_ReplacesPreviousSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	first, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	second, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, second.RefreshToken, *fx.store.users[seeded.ID].RefreshToken)
}

func TestSessionService_RefreshTokens_RotatesPair(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	rotated, err := fx.service.RefreshTokens(ctx, login.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, rotated)

	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)
	assert.NotEqual(t, login.AccessToken, rotated.AccessToken)
	assert.Equal(t, rotated.RefreshToken, *fx.store.users[seeded.ID].RefreshToken)
}

func TestSessionService_RefreshTokens_RejectsReusedToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.seedUser("alice", "alice@example.com", "s3cret")

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = fx.service.RefreshTokens(ctx, login.RefreshToken)
	require.NoError(t, err)

	// The first token was consumed by the rotation above.
	output, err := fx.service.RefreshTokens(ctx, login.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestSessionService_RefreshTokens_RejectsAfterLogout(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, seeded.ID))

	output, err := fx.service.RefreshTokens(ctx, login.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestSessionService_RefreshTokens_MalformedToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	output, err := fx.service.RefreshTokens(ctx, "not-a-token")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RefreshTokens_UserGone(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	delete(fx.store.users, seeded.ID)

	output, err := fx.service.RefreshTokens(ctx, login.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_Logout_ClearsStoredToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "s3cret")

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	require.NotNil(t, fx.store.users[seeded.ID].RefreshToken)

	require.NoError(t, fx.service.Logout(ctx, seeded.ID))
	assert.Nil(t, fx.store.users[seeded.ID].RefreshToken)
}

func TestSessionService_ChangePassword_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "old-pass")

	err := fx.service.ChangePassword(ctx, seeded.ID, "old-pass", "new-pass")
	require.NoError(t, err)

	assert.Equal(t, "hashed:new-pass", fx.store.users[seeded.ID].PasswordHash)
}

func TestSessionService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	seeded := fx.seedUser("alice", "alice@example.com", "old-pass")

	err := fx.service.ChangePassword(ctx, seeded.ID, "wrong", "new-pass")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	assert.Equal(t, "hashed:old-pass", fx.store.users[seeded.ID].PasswordHash)
}

func TestSessionService_ChangePassword_UnknownUser(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	err := fx.service.ChangePassword(ctx, uuid.New(), "old-pass", "new-pass")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
