// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadFile carries one uploaded file from the delivery layer into a use case.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// RegisterUserInput defines the data required to register a new user.
// Avatar is mandatory, CoverImage optional.
type RegisterUserInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     *UploadFile
	CoverImage *UploadFile
}

// UpdateAccountInput defines the mutable account fields.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a new account, storing the uploaded avatar and
	// optional cover image before persisting the user.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// GetCurrentUser returns the account of the authenticated user.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateAccount changes the user's full name and email.
	UpdateAccount(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*entity.User, error)

	// UpdateAvatar stores a new avatar image and updates the user.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar *UploadFile) (*entity.User, error)

	// UpdateCoverImage stores a new cover image and updates the user.
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, coverImage *UploadFile) (*entity.User, error)

	// GetChannelProfile returns the public channel view of the named user,
	// with subscription aggregates computed relative to viewerID.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// GetChannelQR renders a PNG QR code linking to the named channel.
	GetChannelQR(ctx context.Context, username string) ([]byte, error)

	// GetWatchHistory returns the user's watch history, most recent first.
	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchEntry, error)
}
