package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clipstream/config"
	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandler holds dependencies for user and session handlers.
type UserHandler struct {
	userUC       usecase.UserUsecase
	sessionUC    usecase.SessionUsecase
	tokenSvc     service.TokenService
	secureCookie bool
	logger       *slog.Logger
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	SessionUC usecase.SessionUsecase
	TokenSvc  service.TokenService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:       params.UserUC,
		sessionUC:    params.SessionUC,
		tokenSvc:     params.TokenSvc,
		secureCookie: !params.Config.HTTP.InsecureCookies,
		logger:       params.Logger,
	}
}

type registerRequest struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	FullName string `form:"fullname" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Register handles the user registration request. The body is multipart:
// text fields plus an avatar file (required) and cover image (optional).
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}

	avatar, closeAvatar, err := openUpload(c, "avatar")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeAvatar()
	input.Avatar = avatar

	coverImage, closeCover, err := openUpload(c, "coverImage")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeCover()
	input.CoverImage = coverImage

	output, err := h.userUC.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User), "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username,omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

// Login handles the user login request and sets the token cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, &loginResponse{
		User:         newUserResponse(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Login successful")
}

// Logout clears the stored refresh token and expires the cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context(), middleware.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	h.clearTokenCookies(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshToken rotates the token pair. The incoming token is read from the
// cookie first, then from the request body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized request")
	}

	output, err := h.sessionUC.RefreshTokens(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, &tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Token refreshed successfully")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ChangePassword verifies the old password and replaces it.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.sessionUC.ChangePassword(c.Request().Context(), middleware.GetUserID(c), req.OldPassword, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the authenticated user's account.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := h.userUC.GetCurrentUser(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Current user fetched successfully")
}

type updateAccountRequest struct {
	FullName string `json:"fullname" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=FullName,omitempty,email"`
}

// UpdateAccount changes the user's full name and/or email.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	// Preserve fields the caller left out
	current, err := h.userUC.GetCurrentUser(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}
	if req.FullName == "" {
		req.FullName = current.FullName
	}
	if req.Email == "" {
		req.Email = current.Email
	}

	user, err := h.userUC.UpdateAccount(c.Request().Context(), middleware.GetUserID(c), &usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Account updated successfully")
}

// UpdateAvatar stores a new avatar image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	avatar, closeAvatar, err := openUpload(c, "avatar")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeAvatar()

	user, err := h.userUC.UpdateAvatar(c.Request().Context(), middleware.GetUserID(c), avatar)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Avatar updated successfully")
}

// UpdateCoverImage stores a new channel cover image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	coverImage, closeCover, err := openUpload(c, "coverImage")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeCover()

	user, err := h.userUC.UpdateCoverImage(c.Request().Context(), middleware.GetUserID(c), coverImage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Cover image updated successfully")
}

// ChannelProfile returns the public channel view of the named user.
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	username := strings.ToLower(strings.TrimSpace(c.Param("username")))
	if username == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "username is required")
	}

	profile, err := h.userUC.GetChannelProfile(c.Request().Context(), username, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

// ChannelQR renders a PNG QR code linking to the named channel.
func (h *UserHandler) ChannelQR(c echo.Context) error {
	username := strings.ToLower(strings.TrimSpace(c.Param("username")))
	if username == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "username is required")
	}

	png, err := h.userUC.GetChannelQR(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// WatchHistory returns the authenticated user's watch history.
func (h *UserHandler) WatchHistory(c echo.Context) error {
	history, err := h.userUC.GetWatchHistory(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWatchHistoryResponse(history), "Watch history fetched successfully")
}

func (h *UserHandler) setTokenCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(h.tokenCookie(middleware.AccessTokenCookie, accessToken, h.tokenSvc.GetAccessTokenDuration()))
	c.SetCookie(h.tokenCookie(middleware.RefreshTokenCookie, refreshToken, h.tokenSvc.GetRefreshTokenDuration()))
}

func (h *UserHandler) clearTokenCookies(c echo.Context) {
	c.SetCookie(h.tokenCookie(middleware.AccessTokenCookie, "", -time.Hour))
	c.SetCookie(h.tokenCookie(middleware.RefreshTokenCookie, "", -time.Hour))
}

func (h *UserHandler) tokenCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
