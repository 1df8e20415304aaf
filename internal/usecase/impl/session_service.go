// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the user's credentials and issues a fresh token pair.
// The refresh token is persisted on the user row, replacing any previous
// session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("User login attempt", slog.String("username", input.Username), slog.String("email", input.Email))

	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Look up the account by username first, then by email
		user, err := srv.findAccount(ctx, userRepo, input.Username, input.Email)
		if err != nil {
			return err
		}

		// 2. Verify the password
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		// 3. Issue a new token pair
		accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate token pair")
		}

		// 4. Store the refresh token as the single valid session token
		if err := userRepo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}
		user.RefreshToken = &refreshToken

		output = &usecase.LoginOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         user,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err), slog.String("username", input.Username))

		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Any("user_id", output.User.ID))

	return output, nil
}

// RefreshTokens rotates the token pair. The presented refresh token must be
// valid and match the stored one exactly; any mismatch invalidates the call.
func (srv *sessionService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Refreshing token pair")

	// 1. Validate the token signature and type before touching the database
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var output *usecase.TokenPairOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 2. Load the user named by the token
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 3. The token must match the stored one exactly. A stale or reused
		// token means the session has already moved on.
		if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "presented token does not match stored token")
		}

		// 4. Rotate: issue a new pair and overwrite the stored token
		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokenPair(user)
		if err != nil {
			return errors.Wrap(err, "failed to generate token pair")
		}

		if err := userRepo.UpdateRefreshToken(ctx, user.ID, &newRefreshToken); err != nil {
			return errors.Wrap(err, "failed to store rotated refresh token")
		}

		output = &usecase.TokenPairOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Token pair rotated", slog.Any("user_id", claims.UserID))

	return output, nil
}

// Logout clears the stored refresh token, ending the user's session.
func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out user", slog.Any("user_id", userID))

	if err := srv.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		srv.log(ctx).Error("Failed to clear refresh token", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to clear refresh token")
	}

	return nil
}

// ChangePassword verifies the old password and replaces the stored hash.
func (srv *sessionService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	srv.log(ctx).Info("Changing password", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Load the user
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Verify the old password
		if !srv.hasher.Check(oldPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidPassword, "old password mismatch")
		}

		// 3. Hash and store the new password
		hash, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		if err := userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("error", err), slog.Any("user_id", userID))

		return err
	}
	srv.log(ctx).Info("Password changed", slog.Any("user_id", userID))

	return nil
}

// findAccount resolves a login identifier to a user, preferring username.
func (srv *sessionService) findAccount(ctx context.Context, userRepo repository.UserRepository, username, email string) (*entity.User, error) {
	if username != "" {
		user, err := userRepo.FindByUsername(ctx, username)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by username")
		}
	}

	if email != "" {
		user, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by email")
		}
	}

	return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no account matches the given identifier")
}
