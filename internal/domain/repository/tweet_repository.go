package repository

import (
	"context"
	"errors"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTweetNotFound is returned when a tweet is not found.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository defines the standard operations for tweet persistence.
type TweetRepository interface {
	// Create persists a new tweet.
	Create(ctx context.Context, tweet *entity.Tweet) error

	// FindByID retrieves a single tweet with its owner populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)

	// ListByOwner returns all tweets posted by the user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)

	// Update modifies the tweet's content.
	Update(ctx context.Context, tweet *entity.Tweet) error

	// Delete removes the tweet row.
	Delete(ctx context.Context, id uuid.UUID) error
}
