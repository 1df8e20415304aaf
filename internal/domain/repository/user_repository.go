// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateAccount modifies the mutable account details (full name, email).
	UpdateAccount(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken sets or clears the single stored refresh token
	// without touching any other column.
	UpdateRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error

	// UpdateAvatarURL replaces the stored avatar URL.
	UpdateAvatarURL(ctx context.Context, userID uuid.UUID, url string) error

	// UpdateCoverImageURL replaces the stored cover image URL.
	UpdateCoverImageURL(ctx context.Context, userID uuid.UUID, url string) error

	// GetChannelProfile loads the public channel view of the user identified
	// by username, with subscription aggregates computed relative to viewerID.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// AddWatchEntry records that the user watched the video. A repeat watch
	// refreshes the entry's timestamp instead of inserting a duplicate.
	AddWatchEntry(ctx context.Context, userID, videoID uuid.UUID) error

	// FindWatchHistory returns the user's watch history, most recent first.
	FindWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchEntry, error)
}
