package middleware

import (
	"strings"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Cookie names used to carry the token pair.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Echo context keys set by the authenticator.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)

// AuthMiddleware validates access tokens on incoming requests and resolves
// them to a live user account.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate extracts and validates the access token, preferring the
// cookie over the Authorization header, then loads the user it names.
// Every failure mode yields the same unauthorized error so callers cannot
// probe for token state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authenticate(c)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// OptionalAuthenticate attaches the caller's identity when a valid access
// token is present and proceeds anonymously otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.authenticate(c); err == nil {
			c.Set(ContextKeyUserID, user.ID)
			c.Set(ContextKeyUser, user)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context) (*entity.User, error) {
	tokenString := extractToken(c)
	if tokenString == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no access token presented")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("access token rejected")
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token subject unknown")
	}

	// Strip credential material before the entity travels further
	user.PasswordHash = ""
	user.RefreshToken = nil

	return user, nil
}

// extractToken reads the access token from the cookie first, then from the
// Authorization header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// GetUserID returns the authenticated user's ID from the echo context.
// It returns uuid.Nil when the request is anonymous.
func GetUserID(c echo.Context) uuid.UUID {
	if userID, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}

// GetUser returns the authenticated user from the echo context, or nil.
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(ContextKeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
