package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clipstream/config"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	"clipstream/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo serves FindByID from a map; the authenticator touches no
// other repository method.
type stubUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

type authTestFixture struct {
	middleware *AuthMiddleware
	tokenSvc   service.TokenService
	repo       *stubUserRepo
	echo       *echo.Echo
}

func createTestAuthMiddleware(t *testing.T) *authTestFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.TokenTTL.Access = 15 * time.Minute
	cfg.TokenTTL.Refresh = 7 * 24 * time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}

	return &authTestFixture{
		middleware: NewAuthMiddleware(tokenSvc, repo),
		tokenSvc:   tokenSvc,
		repo:       repo,
		echo:       echo.New(),
	}
}

func (f *authTestFixture) seedUser() *entity.User {
	token := "stored-refresh-token"
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice",
		PasswordHash: "bcrypt-hash",
		RefreshToken: &token,
	}
	f.users()[user.ID] = user

	return user
}

func (f *authTestFixture) users() map[uuid.UUID]*entity.User {
	return f.repo.users
}

func (f *authTestFixture) accessTokenFor(t *testing.T, user *entity.User) string {
	t.Helper()

	accessToken, _, err := f.tokenSvc.GenerateTokenPair(user)
	require.NoError(t, err)

	return accessToken
}

func (f *authTestFixture) run(req *http.Request, handler echo.HandlerFunc) (echo.Context, error) {
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	return c, f.middleware.Authenticate(handler)(c)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_BearerToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.accessTokenFor(t, user))

	c, err := fx.run(req, okHandler)
	require.NoError(t, err)

	assert.Equal(t, user.ID, GetUserID(c))
	attached := GetUser(c)
	require.NotNil(t, attached)
	assert.Equal(t, user.Username, attached.Username)
}

func TestAuthMiddleware_Authenticate_Cookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: fx.accessTokenFor(t, user)})

	c, err := fx.run(req, okHandler)
	require.NoError(t, err)
	assert.Equal(t, user.ID, GetUserID(c))
}

func TestAuthMiddleware_Authenticate_CookieTakesPrecedence(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: fx.accessTokenFor(t, user)})
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")

	c, err := fx.run(req, okHandler)
	require.NoError(t, err)
	assert.Equal(t, user.ID, GetUserID(c))
}

func TestAuthMiddleware_Authenticate_StripsCredentialFields(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.accessTokenFor(t, user))

	c, err := fx.run(req, okHandler)
	require.NoError(t, err)

	attached := GetUser(c)
	require.NotNil(t, attached)
	assert.Empty(t, attached.PasswordHash)
	assert.Nil(t, attached.RefreshToken)
}

func TestAuthMiddleware_Authenticate_NoToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := fx.run(req, okHandler)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_MalformedToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")

	_, err := fx.run(req, okHandler)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()

	_, refreshToken, err := fx.tokenSvc.GenerateTokenPair(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+refreshToken)

	_, err2 := fx.run(req, okHandler)
	assert.Error(t, err2)
	assert.ErrorIs(t, err2, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_DeletedUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()
	token := fx.accessTokenFor(t, user)

	delete(fx.users(), user.ID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	_, err := fx.run(req, okHandler)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.middleware.OptionalAuthenticate(okHandler)(c)
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, GetUserID(c))
	assert.Nil(t, GetUser(c))
}

func TestAuthMiddleware_OptionalAuthenticate_WithToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	user := fx.seedUser()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+fx.accessTokenFor(t, user))
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.middleware.OptionalAuthenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, user.ID, GetUserID(c))
}
