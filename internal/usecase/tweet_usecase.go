package usecase

import (
	"context"

	"clipstream/internal/domain/entity"

	"github.com/google/uuid"
)

// TweetUsecase defines the interface for tweet-related business operations.
type TweetUsecase interface {
	CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error)

	// GetUserTweets returns the user's tweets, newest first. An empty result
	// is reported as not found.
	GetUserTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)

	// UpdateTweet changes a tweet's content. Only the author may update.
	UpdateTweet(ctx context.Context, tweetID, callerID uuid.UUID, content string) (*entity.Tweet, error)

	// DeleteTweet removes a tweet and its likes. Only the author may delete.
	DeleteTweet(ctx context.Context, tweetID, callerID uuid.UUID) error
}
