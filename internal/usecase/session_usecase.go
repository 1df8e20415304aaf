// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
// Either Username or Email identifies the account.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// TokenPairOutput returns a freshly rotated token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// SessionUsecase defines the interface for the credential and token lifecycle.
type SessionUsecase interface {
	// Login verifies the credentials, issues a token pair and stores the
	// refresh token as the single valid session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshTokens rotates the token pair. The presented token must match
	// the stored one exactly; a stale or reused token ends the session.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout clears the stored refresh token, invalidating the session.
	Logout(ctx context.Context, userID uuid.UUID) error

	// ChangePassword verifies the old password and replaces it.
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}
